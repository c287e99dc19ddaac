package taxonomy

import "context"

// Repository provides access to one taxonomy table
type Repository interface {
	Kind() Kind

	List(ctx context.Context, filter ListFilter) ([]Term, int64, error)

	// Create inserts t. Errors: SlugTaken on unique violation
	Create(ctx context.Context, t *Term) error

	// GetBySlug returns NotFound(kind) when absent
	GetBySlug(ctx context.Context, slug string) (*Term, error)

	// GetBySlugs returns the terms found, keyed by slug. Missing slugs are
	// simply absent from the map.
	GetBySlugs(ctx context.Context, slugs []string) (map[string]Term, error)

	// DeleteBySlug returns NotFound(kind) when absent
	DeleteBySlug(ctx context.Context, slug string) error
}
