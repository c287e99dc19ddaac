package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply to a review
type Comment struct {
	ID       uuid.UUID `json:"id"`
	ReviewID uuid.UUID `json:"-"`
	AuthorID uuid.UUID `json:"-"`
	Author   string    `json:"author"`
	Text     string    `json:"text"`
	PubDate  time.Time `json:"pub_date"`
}
