package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is one user's scored opinion of a title
type Review struct {
	ID       uuid.UUID `json:"id"`
	TitleID  uuid.UUID `json:"-"`
	AuthorID uuid.UUID `json:"-"`
	Author   string    `json:"author"`
	Text     string    `json:"text"`
	Score    int       `json:"score"`
	PubDate  time.Time `json:"pub_date"`
}
