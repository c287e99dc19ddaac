package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"catalog-review-backend/internal/domains/title"
	"catalog-review-backend/internal/shared"
	"catalog-review-backend/internal/shared/pagination"
	"catalog-review-backend/internal/shared/resource"
	"catalog-review-backend/internal/shared/response"
)

// TitleParam is the path parameter naming a title
const TitleParam = "title_id"

type TitleHandler struct {
	service title.Service
}

func NewTitleHandler(svc title.Service) *TitleHandler {
	return &TitleHandler{service: svc}
}

func (h *TitleHandler) Routes() resource.Routes {
	return resource.Routes{
		List:   h.List,
		Get:    h.Get,
		Create: h.Create,
		Update: h.Update,
		Delete: h.Delete,
	}
}

// List - GET /titles?category=&genre=&name=&year=&page=&limit=
func (h *TitleHandler) List(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	filter := title.ListFilter{
		Category: c.Query("category"),
		Genre:    c.Query("genre"),
		Name:     c.Query("name"),
		Limit:    page.Limit,
		Offset:   page.Offset(),
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			response.HandleError(c, shared.FieldError("year", shared.CodeInvalidFormat, "year must be an integer"))
			return
		}
		filter.Year = &year
	}

	titles, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, titles, page.Meta(total))
}

// Get - GET /titles/:title_id
func (h *TitleHandler) Get(c *gin.Context) {
	id, err := resource.ID(c, TitleParam)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
}

// Create - POST /titles
func (h *TitleHandler) Create(c *gin.Context) {
	var req title.CreateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, t)
}

// Update - PATCH /titles/:title_id
func (h *TitleHandler) Update(c *gin.Context) {
	id, err := resource.ID(c, TitleParam)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	var req title.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
}

// Delete - DELETE /titles/:title_id
func (h *TitleHandler) Delete(c *gin.Context) {
	id, err := resource.ID(c, TitleParam)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}

	response.NoContent(c)
}
