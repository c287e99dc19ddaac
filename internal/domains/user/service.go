package user

import (
	"context"

	"github.com/google/uuid"

	"catalog-review-backend/internal/shared/policy"
)

// AuthService implements the signup / token exchange flow
type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error)
	Token(ctx context.Context, req TokenRequest) (*TokenResponse, error)
}

// Service covers user administration and the self profile
type Service interface {
	LoadActor(ctx context.Context, id uuid.UUID) (policy.Actor, error)

	List(ctx context.Context, search string, limit, offset int) ([]UserResponse, int64, error)
	Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error)
	CreateSuperuser(ctx context.Context, username, email string) (*UserResponse, error)
	Get(ctx context.Context, username string) (*UserResponse, error)
	Update(ctx context.Context, username string, req UpdateUserRequest) (*UserResponse, error)
	Delete(ctx context.Context, username string) error

	GetMe(ctx context.Context, actor policy.Actor) (*UserResponse, error)
	UpdateMe(ctx context.Context, actor policy.Actor, req UpdateUserRequest) (*UserResponse, error)
}
