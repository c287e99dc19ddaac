// Package rules holds the ozzo-validation rules shared by request DTOs.
// Every rule reports a stable code from the shared package.
package rules

import (
	"fmt"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-review-backend/internal/shared"
)

const (
	MinScore = 1
	MaxScore = 10

	ReservedUsername = "me"

	UsernameMaxLength = 150
	EmailMaxLength    = 254
	NameMaxLength     = 256
	SlugMaxLength     = 50
)

var (
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
	slugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

// Year rejects years later than the current calendar year given by now.
// There is no lower bound.
func Year(now func() time.Time) validation.Rule {
	return validation.By(func(value interface{}) error {
		year, ok := intValue(value)
		if !ok {
			return nil
		}
		if current := now().Year(); year > current {
			return validation.NewError(shared.CodeOutOfRange,
				fmt.Sprintf("year cannot be later than %d", current))
		}
		return nil
	})
}

// Score accepts the inclusive range 1..10
var Score = validation.By(func(value interface{}) error {
	score, ok := intValue(value)
	if !ok {
		return nil
	}
	if score < MinScore || score > MaxScore {
		return validation.NewError(shared.CodeOutOfRange,
			fmt.Sprintf("score must be between %d and %d", MinScore, MaxScore))
	}
	return nil
})

// NotReserved rejects the username that collides with the self profile route
var NotReserved = validation.By(func(value interface{}) error {
	iv, _ := validation.Indirect(value)
	s, _ := iv.(string)
	if s == ReservedUsername {
		return validation.NewError(shared.CodeReserved,
			fmt.Sprintf("username %q is reserved", ReservedUsername))
	}
	return nil
})

var UsernameFormat = validation.Match(usernamePattern).
	ErrorObject(validation.NewError(shared.CodeInvalidFormat, "username may contain only letters, digits and @/./+/-/_"))

var SlugFormat = validation.Match(slugPattern).
	ErrorObject(validation.NewError(shared.CodeInvalidFormat, "slug may contain only letters, digits, hyphens and underscores"))

// Username is the full rule set for a username value
func Username() []validation.Rule {
	return []validation.Rule{
		validation.Length(1, UsernameMaxLength),
		UsernameFormat,
		NotReserved,
	}
}

func Slug() []validation.Rule {
	return []validation.Rule{
		validation.Length(1, SlugMaxLength),
		SlugFormat,
	}
}

func intValue(value interface{}) (int, bool) {
	iv, _ := validation.Indirect(value)
	switch v := iv.(type) {
	case int:
		return v, true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
}
