package review

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, titleID uuid.UUID, limit, offset int) ([]Review, int64, error)

	// GetByID returns ErrReviewNotFound unless the review exists and
	// belongs to titleID
	GetByID(ctx context.Context, titleID, id uuid.UUID) (*Review, error)

	ExistsForAuthor(ctx context.Context, titleID, authorID uuid.UUID) (bool, error)

	// Create fills ID and PubDate. A second review of the same title by
	// the same author returns AlreadyReviewed.
	Create(ctx context.Context, r *Review) error

	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}
