package review

import (
	"fmt"

	"catalog-review-backend/internal/shared"
)

var ErrReviewNotFound = fmt.Errorf("review %w", shared.ErrNotFound)

// AlreadyReviewed is the conflict for a second review of the same title
// by the same author
func AlreadyReviewed() error {
	return shared.ConflictError("title", "you have already reviewed this title")
}
