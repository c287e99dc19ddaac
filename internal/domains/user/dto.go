package user

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"catalog-review-backend/internal/shared/policy"
	"catalog-review-backend/internal/shared/rules"
)

// ========================================
// AUTH DTOs
// ========================================

// SignupRequest - POST /auth/signup
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, append([]validation.Rule{validation.Required}, rules.Username()...)...),
		validation.Field(&r.Email, validation.Required, validation.Length(1, rules.EmailMaxLength), is.EmailFormat),
	)
}

func (r *SignupRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
}

// SignupResponse echoes the accepted pair
type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenRequest - POST /auth/token
type TokenRequest struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

func (r TokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, rules.UsernameMaxLength)),
		validation.Field(&r.ConfirmationCode, validation.Required),
	)
}

type TokenResponse struct {
	Token string `json:"token"`
}

// ========================================
// USER DTOs
// ========================================

// CreateUserRequest - POST /users (admin)
type CreateUserRequest struct {
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Bio       string      `json:"bio"`
	Role      policy.Role `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, append([]validation.Rule{validation.Required}, rules.Username()...)...),
		validation.Field(&r.Email, validation.Required, validation.Length(1, rules.EmailMaxLength), is.EmailFormat),
		validation.Field(&r.FirstName, validation.Length(0, 150)),
		validation.Field(&r.LastName, validation.Length(0, 150)),
		validation.Field(&r.Role, validation.In(policy.Roles...).Error("role must be one of user, moderator, admin")),
	)
}

// UpdateUserRequest is a partial update; nil fields are left unchanged
type UpdateUserRequest struct {
	Username  *string      `json:"username"`
	Email     *string      `json:"email"`
	FirstName *string      `json:"first_name"`
	LastName  *string      `json:"last_name"`
	Bio       *string      `json:"bio"`
	Role      *policy.Role `json:"role"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.When(r.Username != nil,
			append([]validation.Rule{validation.Required}, rules.Username()...)...)),
		validation.Field(&r.Email, validation.When(r.Email != nil,
			validation.Required, validation.Length(1, rules.EmailMaxLength), is.EmailFormat)),
		validation.Field(&r.FirstName, validation.Length(0, 150)),
		validation.Field(&r.LastName, validation.Length(0, 150)),
		validation.Field(&r.Role, validation.When(r.Role != nil,
			validation.Required, validation.In(policy.Roles...).Error("role must be one of user, moderator, admin"))),
	)
}

// Apply copies the set fields onto u
func (r UpdateUserRequest) Apply(u *User) {
	if r.Username != nil {
		u.Username = *r.Username
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.FirstName != nil {
		u.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		u.LastName = *r.LastName
	}
	if r.Bio != nil {
		u.Bio = *r.Bio
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
}

type UserResponse struct {
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Bio       string      `json:"bio"`
	Role      policy.Role `json:"role"`
}
