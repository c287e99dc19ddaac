package comment

import (
	"fmt"

	"catalog-review-backend/internal/shared"
)

var ErrCommentNotFound = fmt.Errorf("comment %w", shared.ErrNotFound)
