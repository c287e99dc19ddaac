package comment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, reviewID uuid.UUID, limit, offset int) ([]Comment, int64, error)

	// GetByID returns ErrCommentNotFound unless the comment exists and
	// belongs to reviewID
	GetByID(ctx context.Context, reviewID, id uuid.UUID) (*Comment, error)

	// Create fills ID and PubDate
	Create(ctx context.Context, c *Comment) error
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
