package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"catalog-review-backend/internal/domains/comment"
	"catalog-review-backend/internal/shared/middleware"
	"catalog-review-backend/internal/shared/pagination"
	"catalog-review-backend/internal/shared/resource"
	"catalog-review-backend/internal/shared/response"
)

const (
	TitleParam   = "title_id"
	ReviewParam  = "review_id"
	CommentParam = "comment_id"
)

type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(svc comment.Service) *CommentHandler {
	return &CommentHandler{service: svc}
}

func (h *CommentHandler) Routes() resource.Routes {
	return resource.Routes{
		List:   h.List,
		Get:    h.Get,
		Create: h.Create,
		Update: h.Update,
		Delete: h.Delete,
	}
}

func parentPath(c *gin.Context) (comment.Path, error) {
	titleID, err := resource.ID(c, TitleParam)
	if err != nil {
		return comment.Path{}, err
	}
	reviewID, err := resource.ID(c, ReviewParam)
	if err != nil {
		return comment.Path{}, err
	}
	return comment.Path{TitleID: titleID, ReviewID: reviewID}, nil
}

func itemPath(c *gin.Context) (comment.Path, uuid.UUID, error) {
	path, err := parentPath(c)
	if err != nil {
		return path, uuid.Nil, err
	}
	id, err := resource.ID(c, CommentParam)
	return path, id, err
}

// List - GET /titles/:title_id/reviews/:review_id/comments
func (h *CommentHandler) List(c *gin.Context) {
	path, err := parentPath(c)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	comments, total, err := h.service.List(c.Request.Context(), path, page.Limit, page.Offset())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, comments, page.Meta(total))
}

// Get - GET .../comments/:comment_id
func (h *CommentHandler) Get(c *gin.Context) {
	path, id, err := itemPath(c)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	cm, err := h.service.Get(c.Request.Context(), path, id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cm)
}

// Create - POST .../comments
func (h *CommentHandler) Create(c *gin.Context) {
	path, err := parentPath(c)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cm, err := h.service.Create(c.Request.Context(), middleware.ActorFrom(c), path, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, cm)
}

// Update - PATCH .../comments/:comment_id
func (h *CommentHandler) Update(c *gin.Context) {
	path, id, err := itemPath(c)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	var req comment.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cm, err := h.service.Update(c.Request.Context(), middleware.ActorFrom(c), path, id, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cm)
}

// Delete - DELETE .../comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	path, id, err := itemPath(c)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.ActorFrom(c), path, id); err != nil {
		response.HandleError(c, err)
		return
	}

	response.NoContent(c)
}
