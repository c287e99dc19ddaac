package review

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-review-backend/internal/shared/rules"
)

// CreateReviewRequest - POST /titles/:title_id/reviews
type CreateReviewRequest struct {
	Text  string `json:"text"`
	Score *int   `json:"score"`
}

func (r *CreateReviewRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
		validation.Field(&r.Score, validation.NotNil, rules.Score),
	)
}

// UpdateReviewRequest - PATCH /titles/:title_id/reviews/:review_id
type UpdateReviewRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

func (r *UpdateReviewRequest) Normalize() {
	if r.Text != nil {
		text := strings.TrimSpace(*r.Text)
		r.Text = &text
	}
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.When(r.Text != nil, validation.Required)),
		validation.Field(&r.Score, rules.Score),
	)
}
