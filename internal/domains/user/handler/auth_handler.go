package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-review-backend/internal/domains/user"
	"catalog-review-backend/internal/shared/response"
)

type AuthHandler struct {
	service user.AuthService
}

func NewAuthHandler(svc user.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Signup - POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req user.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Token - POST /auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req user.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Token(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
