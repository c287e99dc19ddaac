package taxonomy

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-review-backend/internal/shared/rules"
)

// CreateTermRequest - POST /categories, POST /genres
type CreateTermRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (r *CreateTermRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Slug = strings.TrimSpace(r.Slug)
}

func (r CreateTermRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, rules.NameMaxLength)),
		validation.Field(&r.Slug, append([]validation.Rule{validation.Required}, rules.Slug()...)...),
	)
}
