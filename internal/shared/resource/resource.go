// Package resource registers the routes a resource declares it supports.
// PUT is never registered: updates are partial (PATCH) only.
package resource

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"catalog-review-backend/internal/shared"
)

// Capabilities is a set of supported operations
type Capabilities uint8

const (
	List Capabilities = 1 << iota
	Get
	Create
	Update
	Delete

	ReadOnly = List | Get
	CRUD     = List | Get | Create | Update | Delete
)

func (c Capabilities) Has(op Capabilities) bool {
	return c&op == op
}

// Routes holds the handlers for a resource. Handlers for capabilities
// that are not declared may be nil.
type Routes struct {
	List   gin.HandlerFunc
	Get    gin.HandlerFunc
	Create gin.HandlerFunc
	Update gin.HandlerFunc
	Delete gin.HandlerFunc
}

// Mount registers the collection routes on group and the item routes on
// group/:param
func Mount(group gin.IRoutes, param string, caps Capabilities, r Routes) {
	item := "/:" + param

	if caps.Has(List) && r.List != nil {
		group.GET("", r.List)
	}
	if caps.Has(Create) && r.Create != nil {
		group.POST("", r.Create)
	}
	if caps.Has(Get) && r.Get != nil {
		group.GET(item, r.Get)
	}
	if caps.Has(Update) && r.Update != nil {
		group.PATCH(item, r.Update)
	}
	if caps.Has(Delete) && r.Delete != nil {
		group.DELETE(item, r.Delete)
	}
}

// ID parses the uuid path parameter. A malformed id cannot name an existing
// object, so it is reported as not found.
func ID(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %w", param, shared.ErrNotFound)
	}
	return id, nil
}
