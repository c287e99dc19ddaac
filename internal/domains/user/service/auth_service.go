package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"catalog-review-backend/internal/domains/user"
	"catalog-review-backend/internal/infrastructure/metrics"
	"catalog-review-backend/internal/shared"
	"catalog-review-backend/internal/shared/policy"
)

// Mailer delivers the confirmation code
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// TokenIssuer mints access tokens
type TokenIssuer interface {
	GenerateAccessToken(userID, username, role string) (string, time.Time, error)
}

// AttemptLimiter tracks failed code exchanges per username
type AttemptLimiter interface {
	Blocked(ctx context.Context, username string) bool
	RecordFailure(ctx context.Context, username string)
	Reset(ctx context.Context, username string)
}

const confirmationSubject = "Your confirmation code"

// authService implements user.AuthService
type authService struct {
	repo     user.Repository
	mailer   Mailer
	tokens   TokenIssuer
	attempts AttemptLimiter

	generateCode func() (string, error)
	hashCost     int
}

func NewAuthService(repo user.Repository, mailer Mailer, tokens TokenIssuer, attempts AttemptLimiter) user.AuthService {
	return &authService{
		repo:         repo,
		mailer:       mailer,
		tokens:       tokens,
		attempts:     attempts,
		generateCode: generateCode,
		hashCost:     bcrypt.DefaultCost,
	}
}

// ========================================
// SIGNUP
// ========================================

// Signup registers (username, email) and mails a confirmation code.
//
// Repeating the exact pair while a code is pending is a no-op; repeating it
// after the code was exchanged issues a fresh one. Any other collision on
// username or email is a conflict.
func (s *authService) Signup(ctx context.Context, req user.SignupRequest) (*user.SignupResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	byName, err := s.lookup(ctx, s.repo.GetByUsername, req.Username)
	if err != nil {
		return nil, err
	}
	byEmail, err := s.lookup(ctx, s.repo.GetByEmail, req.Email)
	if err != nil {
		return nil, err
	}

	resp := &user.SignupResponse{Username: req.Username, Email: req.Email}

	if byName != nil && byEmail != nil && byName.ID == byEmail.ID {
		if byName.HasPendingCode() {
			return resp, nil
		}
		if err := s.issueCode(ctx, byName); err != nil {
			return nil, err
		}
		return resp, nil
	}

	errs := validation.Errors{}
	if byName != nil {
		errs["username"] = fieldErr(user.UsernameTaken(), "username")
	}
	if byEmail != nil {
		errs["email"] = fieldErr(user.EmailTaken(), "email")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	u := &user.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     policy.RoleUser,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if !shared.HasCode(err, shared.CodeConflict) {
			return nil, err
		}
		// A concurrent signup may have created the same pair; its code stands.
		same, lookupErr := s.isExactPair(ctx, req.Username, req.Email)
		if lookupErr != nil {
			return nil, lookupErr
		}
		if same {
			return resp, nil
		}
		return nil, err
	}

	if err := s.issueCode(ctx, u); err != nil {
		return nil, err
	}
	return resp, nil
}

// issueCode stores the hash of a new code and mails the plaintext. If the
// mail cannot be handed off the code is cleared again.
func (s *authService) issueCode(ctx context.Context, u *user.User) error {
	code, err := s.generateCode()
	if err != nil {
		return err
	}
	hash, err := hashCode(code, s.hashCost)
	if err != nil {
		return err
	}

	if err := s.repo.SetConfirmationCode(ctx, u.ID, &hash); err != nil {
		return fmt.Errorf("store confirmation code: %w", err)
	}

	body := fmt.Sprintf("Hello %s,\n\nYour confirmation code is: %s\n\nExchange it at /api/v1/auth/token to get an access token.\n",
		u.Username, code)
	if err := s.mailer.Send(ctx, u.Email, confirmationSubject, body); err != nil {
		metrics.ConfirmationEmail("failed")
		if clearErr := s.repo.SetConfirmationCode(ctx, u.ID, nil); clearErr != nil {
			log.Error().Err(clearErr).Str("username", u.Username).Msg("Failed to clear undelivered confirmation code")
		}
		return fmt.Errorf("dispatch confirmation code: %w", err)
	}

	metrics.ConfirmationEmail("sent")
	return nil
}

func (s *authService) isExactPair(ctx context.Context, username, email string) (bool, error) {
	byName, err := s.lookup(ctx, s.repo.GetByUsername, username)
	if err != nil {
		return false, err
	}
	byEmail, err := s.lookup(ctx, s.repo.GetByEmail, email)
	if err != nil {
		return false, err
	}
	return byName != nil && byEmail != nil && byName.ID == byEmail.ID, nil
}

func (s *authService) lookup(ctx context.Context, get func(context.Context, string) (*user.User, error), key string) (*user.User, error) {
	u, err := get(ctx, key)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ========================================
// TOKEN
// ========================================

// Token exchanges a pending confirmation code for an access token. The code
// is single-use: of two concurrent exchanges only one succeeds.
func (s *authService) Token(ctx context.Context, req user.TokenRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.attempts.Blocked(ctx, req.Username) {
		return nil, shared.ErrTooManyAttempts
	}

	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if !u.HasPendingCode() || !codeMatches(*u.ConfirmationCode, req.ConfirmationCode) {
		s.attempts.RecordFailure(ctx, req.Username)
		return nil, shared.ErrInvalidCode
	}

	consumed, err := s.repo.ConsumeConfirmationCode(ctx, u.ID, *u.ConfirmationCode)
	if err != nil {
		return nil, err
	}
	if !consumed {
		return nil, shared.ErrInvalidCode
	}

	token, _, err := s.tokens.GenerateAccessToken(u.ID.String(), u.Username, u.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.attempts.Reset(ctx, req.Username)
	return &user.TokenResponse{Token: token}, nil
}

// fieldErr unwraps the single entry of a one-field validation.Errors
func fieldErr(err error, field string) error {
	var ve validation.Errors
	if errors.As(err, &ve) {
		return ve[field]
	}
	return err
}
