package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-review-backend/internal/domains/user"
	"catalog-review-backend/internal/shared/middleware"
	"catalog-review-backend/internal/shared/pagination"
	"catalog-review-backend/internal/shared/resource"
	"catalog-review-backend/internal/shared/response"
)

// UserParam is the path parameter naming a user
const UserParam = "username"

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Routes returns the handlers mounted under /users
func (h *UserHandler) Routes() resource.Routes {
	return resource.Routes{
		List:   h.List,
		Get:    h.Get,
		Create: h.Create,
		Update: h.Update,
		Delete: h.Delete,
	}
}

// ════════════════════════════════════════════════════════════════
// ADMIN: /users
// ════════════════════════════════════════════════════════════════

// List - GET /users?search=&page=&limit=
func (h *UserHandler) List(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	users, total, err := h.service.List(c.Request.Context(), c.Query("search"), page.Limit, page.Offset())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, users, page.Meta(total))
}

// Create - POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Get - GET /users/:username
func (h *UserHandler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param(UserParam))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Update - PATCH /users/:username
func (h *UserHandler) Update(c *gin.Context) {
	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param(UserParam), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete - DELETE /users/:username
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param(UserParam)); err != nil {
		response.HandleError(c, err)
		return
	}

	response.NoContent(c)
}

// ════════════════════════════════════════════════════════════════
// SELF: /users/me
// ════════════════════════════════════════════════════════════════

// GetMe - GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	resp, err := h.service.GetMe(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// UpdateMe - PATCH /users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.UpdateMe(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
