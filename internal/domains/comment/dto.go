package comment

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCommentRequest - POST .../reviews/:review_id/comments
type CreateCommentRequest struct {
	Text string `json:"text"`
}

func (r *CreateCommentRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
	)
}

// UpdateCommentRequest - PATCH .../comments/:comment_id
type UpdateCommentRequest struct {
	Text *string `json:"text"`
}

func (r *UpdateCommentRequest) Normalize() {
	if r.Text != nil {
		text := strings.TrimSpace(*r.Text)
		r.Text = &text
	}
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.When(r.Text != nil, validation.Required)),
	)
}
