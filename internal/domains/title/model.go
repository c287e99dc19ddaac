package title

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"catalog-review-backend/internal/domains/taxonomy"
)

// Title is a catalog entry. Category and Genres carry the linked terms;
// Rating is nil until the title has at least one review.
type Title struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Year        int             `json:"year"`
	Rating      *float64        `json:"rating"`
	Description string          `json:"description"`
	Genres      []taxonomy.Term `json:"genre"`
	Category    *taxonomy.Term  `json:"category"`
}

// GenreIDs returns the ids of the linked genres
func (t *Title) GenreIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.Genres))
	for _, g := range t.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

// CategoryID returns the linked category id, nil when uncategorised
func (t *Title) CategoryID() *uuid.UUID {
	if t.Category == nil {
		return nil
	}
	id := t.Category.ID
	return &id
}

// Rating converts the textual mean of review scores (Postgres numeric) into
// the exposed rating. A nil mean means no reviews.
func Rating(mean *string) (*float64, error) {
	if mean == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*mean)
	if err != nil {
		return nil, fmt.Errorf("invalid rating %q: %w", *mean, err)
	}
	f := d.InexactFloat64()
	return &f, nil
}

// ListFilter narrows a title listing. Category and Genre match slugs
// case-insensitively; Name matches a substring.
type ListFilter struct {
	Category string
	Genre    string
	Name     string
	Year     *int
	Limit    int
	Offset   int
}
