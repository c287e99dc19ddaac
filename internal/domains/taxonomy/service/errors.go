package service

import (
	"errors"

	"catalog-review-backend/internal/shared"
)

func isNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}
