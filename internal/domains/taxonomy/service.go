package taxonomy

import "context"

type Service interface {
	List(ctx context.Context, search string, limit, offset int) ([]Term, int64, error)
	Create(ctx context.Context, req CreateTermRequest) (*Term, error)
	Delete(ctx context.Context, slug string) error
}
