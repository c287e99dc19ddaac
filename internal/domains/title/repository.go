package title

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Title, int64, error)

	// GetByID returns ErrTitleNotFound when absent
	GetByID(ctx context.Context, id uuid.UUID) (*Title, error)

	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Create inserts t and its genre links in one transaction
	Create(ctx context.Context, t *Title) error

	// Update writes t's columns and, when replaceGenres is set, replaces
	// its genre links
	Update(ctx context.Context, t *Title, replaceGenres bool) error

	// Delete removes the title together with its reviews and comments
	Delete(ctx context.Context, id uuid.UUID) error
}
