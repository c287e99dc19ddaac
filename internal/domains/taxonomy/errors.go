package taxonomy

import (
	"fmt"

	"catalog-review-backend/internal/shared"
)

// NotFound returns the not-found error for kind
func NotFound(kind Kind) error {
	return fmt.Errorf("%s %w", kind.Label, shared.ErrNotFound)
}

// SlugTaken is the field error for a duplicate slug
func SlugTaken(kind Kind) error {
	return shared.ConflictError("slug", fmt.Sprintf("a %s with this slug already exists", kind.Label))
}
