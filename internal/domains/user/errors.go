package user

import (
	"fmt"

	"catalog-review-backend/internal/shared"
)

var ErrUserNotFound = fmt.Errorf("user %w", shared.ErrNotFound)

// UsernameTaken is the field error for a duplicate username
func UsernameTaken() error {
	return shared.ConflictError("username", "a user with that username already exists")
}

// EmailTaken is the field error for a duplicate email
func EmailTaken() error {
	return shared.ConflictError("email", "a user with that email already exists")
}
