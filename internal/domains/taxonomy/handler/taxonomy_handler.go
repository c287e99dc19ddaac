package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-review-backend/internal/domains/taxonomy"
	"catalog-review-backend/internal/shared/pagination"
	"catalog-review-backend/internal/shared/resource"
	"catalog-review-backend/internal/shared/response"
)

// SlugParam is the path parameter naming a category or genre
const SlugParam = "slug"

// Capabilities supported by /categories and /genres
const Capabilities = resource.List | resource.Create | resource.Delete

type TermHandler struct {
	service taxonomy.Service
}

func NewTermHandler(svc taxonomy.Service) *TermHandler {
	return &TermHandler{service: svc}
}

func (h *TermHandler) Routes() resource.Routes {
	return resource.Routes{
		List:   h.List,
		Create: h.Create,
		Delete: h.Delete,
	}
}

// List - GET /categories?search=&page=&limit=
func (h *TermHandler) List(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	terms, total, err := h.service.List(c.Request.Context(), c.Query("search"), page.Limit, page.Offset())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, terms, page.Meta(total))
}

// Create - POST /categories
func (h *TermHandler) Create(c *gin.Context) {
	var req taxonomy.CreateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	term, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, term)
}

// Delete - DELETE /categories/:slug
func (h *TermHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param(SlugParam)); err != nil {
		response.HandleError(c, err)
		return
	}

	response.NoContent(c)
}
