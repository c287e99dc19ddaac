package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-review-backend/internal/domains/review"
	"catalog-review-backend/internal/shared/middleware"
	"catalog-review-backend/internal/shared/pagination"
	"catalog-review-backend/internal/shared/resource"
	"catalog-review-backend/internal/shared/response"
)

const (
	// TitleParam names the parent title in nested routes
	TitleParam = "title_id"
	// ReviewParam names a review
	ReviewParam = "review_id"
)

type ReviewHandler struct {
	service review.Service
}

func NewReviewHandler(svc review.Service) *ReviewHandler {
	return &ReviewHandler{service: svc}
}

func (h *ReviewHandler) Routes() resource.Routes {
	return resource.Routes{
		List:   h.List,
		Get:    h.Get,
		Create: h.Create,
		Update: h.Update,
		Delete: h.Delete,
	}
}

// List - GET /titles/:title_id/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	titleID, err := resource.ID(c, TitleParam)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	reviews, total, err := h.service.List(c.Request.Context(), titleID, page.Limit, page.Offset())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, reviews, page.Meta(total))
}

// Get - GET /titles/:title_id/reviews/:review_id
func (h *ReviewHandler) Get(c *gin.Context) {
	titleID, err := resource.ID(c, TitleParam)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	id, err := resource.ID(c, ReviewParam)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	r, err := h.service.Get(c.Request.Context(), titleID, id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, r)
}

// Create - POST /titles/:title_id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	titleID, err := resource.ID(c, TitleParam)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	r, err := h.service.Create(c.Request.Context(), middleware.ActorFrom(c), titleID, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, r)
}

// Update - PATCH /titles/:title_id/reviews/:review_id
func (h *ReviewHandler) Update(c *gin.Context) {
	titleID, err := resource.ID(c, TitleParam)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	id, err := resource.ID(c, ReviewParam)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	var req review.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	r, err := h.service.Update(c.Request.Context(), middleware.ActorFrom(c), titleID, id, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, r)
}

// Delete - DELETE /titles/:title_id/reviews/:review_id
func (h *ReviewHandler) Delete(c *gin.Context) {
	titleID, err := resource.ID(c, TitleParam)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	id, err := resource.ID(c, ReviewParam)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.ActorFrom(c), titleID, id); err != nil {
		response.HandleError(c, err)
		return
	}

	response.NoContent(c)
}
