package title

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]Title, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*Title, error)
	Create(ctx context.Context, req CreateTitleRequest) (*Title, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTitleRequest) (*Title, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
