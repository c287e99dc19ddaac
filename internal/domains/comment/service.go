package comment

import (
	"context"

	"github.com/google/uuid"

	"catalog-review-backend/internal/shared/policy"
)

// Path locates a comment collection: the review and the title it must
// belong to
type Path struct {
	TitleID  uuid.UUID
	ReviewID uuid.UUID
}

type Service interface {
	List(ctx context.Context, path Path, limit, offset int) ([]Comment, int64, error)
	Get(ctx context.Context, path Path, id uuid.UUID) (*Comment, error)
	Create(ctx context.Context, actor policy.Actor, path Path, req CreateCommentRequest) (*Comment, error)
	Update(ctx context.Context, actor policy.Actor, path Path, id uuid.UUID, req UpdateCommentRequest) (*Comment, error)
	Delete(ctx context.Context, actor policy.Actor, path Path, id uuid.UUID) error
}
