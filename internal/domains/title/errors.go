package title

import (
	"fmt"
	"strings"

	"catalog-review-backend/internal/shared"
)

var ErrTitleNotFound = fmt.Errorf("title %w", shared.ErrNotFound)

// UnknownCategory is the field error for a category slug that does not exist
func UnknownCategory(slug string) error {
	return shared.FieldError("category", shared.CodeDoesNotExist,
		fmt.Sprintf("category %q does not exist", slug))
}

// UnknownGenres is the field error for genre slugs that do not exist
func UnknownGenres(slugs []string) error {
	return shared.FieldError("genre", shared.CodeDoesNotExist,
		fmt.Sprintf("unknown genres: %s", strings.Join(slugs, ", ")))
}
