package service

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"catalog-review-backend/internal/domains/user"
	"catalog-review-backend/internal/shared"
	"catalog-review-backend/internal/shared/policy"
)

// userService implements user.Service
type userService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

// LoadActor reads the current role and superuser flag of a token subject
func (s *userService) LoadActor(ctx context.Context, id uuid.UUID) (policy.Actor, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return policy.Anonymous(), err
	}
	return u.Actor(), nil
}

// ========================================
// ADMIN
// ========================================

func (s *userService) List(ctx context.Context, search string, limit, offset int) ([]user.UserResponse, int64, error) {
	users, total, err := s.repo.List(ctx, user.ListFilter{Search: search, Limit: limit, Offset: offset})
	if err != nil {
		return nil, 0, err
	}

	out := make([]user.UserResponse, len(users))
	for i := range users {
		out[i] = users[i].ToResponse()
	}
	return out, total, nil
}

func (s *userService) Create(ctx context.Context, req user.CreateUserRequest) (*user.UserResponse, error) {
	if req.Role == "" {
		req.Role = policy.RoleUser
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u := &user.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      req.Role,
	}
	if err := s.checkUnique(ctx, u, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	resp := u.ToResponse()
	return &resp, nil
}

// CreateSuperuser creates an admin account flagged as superuser. It has no
// confirmation code until signup is repeated for the same pair.
func (s *userService) CreateSuperuser(ctx context.Context, username, email string) (*user.UserResponse, error) {
	req := user.CreateUserRequest{Username: username, Email: email, Role: policy.RoleAdmin}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u := &user.User{
		Username:    username,
		Email:       email,
		Role:        policy.RoleAdmin,
		IsSuperuser: true,
	}
	if err := s.checkUnique(ctx, u, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	resp := u.ToResponse()
	return &resp, nil
}

func (s *userService) Get(ctx context.Context, username string) (*user.UserResponse, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	resp := u.ToResponse()
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, username string, req user.UpdateUserRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, u, req)
}

func (s *userService) Delete(ctx context.Context, username string) error {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, u.ID)
}

// ========================================
// SELF PROFILE
// ========================================

func (s *userService) GetMe(ctx context.Context, actor policy.Actor) (*user.UserResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}
	u, err := s.repo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	resp := u.ToResponse()
	return &resp, nil
}

// UpdateMe applies a partial update to the actor's own profile. A role in
// the request is ignored.
func (s *userService) UpdateMe(ctx context.Context, actor policy.Actor, req user.UpdateUserRequest) (*user.UserResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}
	req.Role = nil
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, u, req)
}

func (s *userService) apply(ctx context.Context, u *user.User, req user.UpdateUserRequest) (*user.UserResponse, error) {
	original := *u
	req.Apply(u)

	changed := &user.User{ID: u.ID}
	if u.Username != original.Username {
		changed.Username = u.Username
	}
	if u.Email != original.Email {
		changed.Email = u.Email
	}
	if err := s.checkUnique(ctx, changed, u.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := u.ToResponse()
	return &resp, nil
}

// checkUnique reports username/email conflicts with users other than self.
// Empty fields on u are not checked.
func (s *userService) checkUnique(ctx context.Context, u *user.User, self uuid.UUID) error {
	errs := validation.Errors{}

	if u.Username != "" {
		taken, err := s.takenBy(ctx, s.repo.GetByUsername, u.Username, self)
		if err != nil {
			return err
		}
		if taken {
			errs["username"] = fieldErr(user.UsernameTaken(), "username")
		}
	}
	if u.Email != "" {
		taken, err := s.takenBy(ctx, s.repo.GetByEmail, u.Email, self)
		if err != nil {
			return err
		}
		if taken {
			errs["email"] = fieldErr(user.EmailTaken(), "email")
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *userService) takenBy(ctx context.Context, get func(context.Context, string) (*user.User, error), key string, self uuid.UUID) (bool, error) {
	existing, err := get(ctx, key)
	if errors.Is(err, user.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check uniqueness: %w", err)
	}
	return existing.ID != self, nil
}
