package user

import (
	"time"

	"github.com/google/uuid"

	"catalog-review-backend/internal/shared/policy"
)

// User is an account. ConfirmationCode holds the bcrypt hash of the
// pending code, nil once it has been exchanged (or never issued).
type User struct {
	ID               uuid.UUID
	Username         string
	Email            string
	FirstName        string
	LastName         string
	Bio              string
	Role             policy.Role
	IsSuperuser      bool
	ConfirmationCode *string
	DateJoined       time.Time
}

// HasPendingCode reports the PendingConfirmation state
func (u *User) HasPendingCode() bool {
	return u.ConfirmationCode != nil && *u.ConfirmationCode != ""
}

func (u *User) Actor() policy.Actor {
	return policy.Authenticated(u.ID, u.Username, u.Role, u.IsSuperuser)
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		Role:      u.Role,
	}
}

// ListFilter narrows the admin user listing
type ListFilter struct {
	Search string // username substring, case-insensitive
	Limit  int
	Offset int
}
