package shared

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Error kinds shared across domains. Domain errors wrap these with %w so
// response.HandleError can map them without knowing every domain.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("authentication credentials were not provided or are invalid")
	ErrForbidden       = errors.New("you do not have permission to perform this action")
	ErrInvalidCode     = errors.New("invalid confirmation code")
	ErrTooManyAttempts = errors.New("too many attempts, try again later")
)

// Stable codes carried by field errors
const (
	CodeOutOfRange    = "out_of_range"
	CodeReserved      = "reserved"
	CodeConflict      = "conflict"
	CodeInvalidFormat = "invalid_format"
	CodeRequired      = "required"
	CodeDoesNotExist  = "does_not_exist"
)

// FieldError builds a single field-scoped validation error
func FieldError(field, code, message string) error {
	return validation.Errors{
		field: validation.NewError(code, message),
	}
}

// ConflictError reports a uniqueness violation on field
func ConflictError(field, message string) error {
	return FieldError(field, CodeConflict, message)
}

// IsFieldError reports whether err carries field-scoped validation errors
func IsFieldError(err error) bool {
	var ve validation.Errors
	return errors.As(err, &ve)
}

// HasCode reports whether any field error in err has the given code
func HasCode(err error, code string) bool {
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return false
	}
	for _, fe := range ve {
		if hasCode(fe, code) {
			return true
		}
	}
	return false
}

func hasCode(err error, code string) bool {
	var ve validation.Error
	if errors.As(err, &ve) {
		return ve.Code() == code
	}
	var nested validation.Errors
	if errors.As(err, &nested) {
		for _, fe := range nested {
			if hasCode(fe, code) {
				return true
			}
		}
	}
	return false
}

// FieldErrorDetails flattens validation errors into field → message
func FieldErrorDetails(err error) map[string]string {
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for field, fe := range ve {
		if fe != nil {
			out[field] = fe.Error()
		}
	}
	return out
}
