package title

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-review-backend/internal/shared/rules"
)

// CreateTitleRequest - POST /titles
type CreateTitleRequest struct {
	Name        string   `json:"name"`
	Year        *int     `json:"year"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Genre       []string `json:"genre"`
}

func (r *CreateTitleRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
	r.Genre = trimAll(r.Genre)
}

func (r CreateTitleRequest) Validate(now func() time.Time) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, rules.NameMaxLength)),
		validation.Field(&r.Year, validation.NotNil, rules.Year(now)),
		validation.Field(&r.Category, rules.Slug()...),
		validation.Field(&r.Genre, validation.Each(slugItem()...)),
	)
}

// UpdateTitleRequest - PATCH /titles/:title_id
//
// Nil fields are left unchanged. An empty Category clears the category;
// a present Genre list, even an empty one, replaces the genre set.
type UpdateTitleRequest struct {
	Name        *string  `json:"name"`
	Year        *int     `json:"year"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Genre       []string `json:"genre"`
}

func (r *UpdateTitleRequest) Normalize() {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
	}
	if r.Category != nil {
		slug := strings.TrimSpace(*r.Category)
		r.Category = &slug
	}
	r.Genre = trimAll(r.Genre)
}

func (r UpdateTitleRequest) Validate(now func() time.Time) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.When(r.Name != nil, validation.Required, validation.Length(1, rules.NameMaxLength))),
		validation.Field(&r.Year, rules.Year(now)),
		validation.Field(&r.Category, rules.Slug()...),
		validation.Field(&r.Genre, validation.Each(slugItem()...)),
	)
}

func slugItem() []validation.Rule {
	return append([]validation.Rule{validation.Required}, rules.Slug()...)
}

func trimAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
