package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for users
type Repository interface {
	// Create inserts u. Errors: UsernameTaken / EmailTaken on unique violation
	Create(ctx context.Context, u *User) error

	// GetByID / GetByUsername / GetByEmail return ErrUserNotFound when absent.
	// Username and email lookups are exact.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// List returns a page of users ordered by username plus the total count
	List(ctx context.Context, filter ListFilter) ([]User, int64, error)

	// Update writes profile fields and role of u
	Update(ctx context.Context, u *User) error

	// Delete removes the user; their reviews and comments cascade
	Delete(ctx context.Context, id uuid.UUID) error

	// SetConfirmationCode stores codeHash (nil clears it)
	SetConfirmationCode(ctx context.Context, id uuid.UUID, codeHash *string) error

	// ConsumeConfirmationCode clears the code only if it still equals
	// codeHash. Returns false if another exchange consumed it first.
	ConsumeConfirmationCode(ctx context.Context, id uuid.UUID, codeHash string) (bool, error)
}
