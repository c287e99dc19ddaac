package review

import (
	"context"

	"github.com/google/uuid"

	"catalog-review-backend/internal/shared/policy"
)

type Service interface {
	List(ctx context.Context, titleID uuid.UUID, limit, offset int) ([]Review, int64, error)
	Get(ctx context.Context, titleID, id uuid.UUID) (*Review, error)
	Create(ctx context.Context, actor policy.Actor, titleID uuid.UUID, req CreateReviewRequest) (*Review, error)
	Update(ctx context.Context, actor policy.Actor, titleID, id uuid.UUID, req UpdateReviewRequest) (*Review, error)
	Delete(ctx context.Context, actor policy.Actor, titleID, id uuid.UUID) error
}
