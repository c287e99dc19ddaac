package taxonomy

import "github.com/google/uuid"

// Term is a category or a genre
type Term struct {
	ID   uuid.UUID `json:"-"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// Kind names one taxonomy table
type Kind struct {
	Table string
	Label string
}

var (
	Categories = Kind{Table: "categories", Label: "category"}
	Genres     = Kind{Table: "genres", Label: "genre"}
)

// ListFilter narrows a term listing
type ListFilter struct {
	Search string // name substring, case-insensitive
	Limit  int
	Offset int
}
