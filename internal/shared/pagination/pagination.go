package pagination

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-review-backend/internal/shared"
	"catalog-review-backend/internal/shared/response"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxOffset bounds (page-1)*limit
	MaxOffset = math.MaxInt32
)

// Params is a 1-based page request
type Params struct {
	Page  int
	Limit int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p Params) Meta(total int64) *response.Meta {
	return &response.Meta{Page: p.Page, Limit: p.Limit, Total: total}
}

// FromQuery reads page and limit from the query string. Missing values take
// defaults; malformed or out of range values are field errors.
func FromQuery(c *gin.Context) (Params, error) {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}
	errs := validation.Errors{}

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs["page"] = validation.NewError(shared.CodeOutOfRange, "page must be a positive integer")
		} else {
			p.Page = n
		}
	}

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxLimit {
			errs["limit"] = validation.NewError(shared.CodeOutOfRange, "limit must be between 1 and 100")
		} else {
			p.Limit = n
		}
	}

	if _, bad := errs["page"]; !bad && p.Page-1 > MaxOffset/p.Limit {
		errs["page"] = validation.NewError(shared.CodeOutOfRange, "page is too large")
	}

	if len(errs) > 0 {
		return p, errs
	}
	return p, nil
}
