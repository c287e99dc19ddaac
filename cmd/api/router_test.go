package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog-review-backend/internal/domains/user"
	userHandler "catalog-review-backend/internal/domains/user/handler"
	"catalog-review-backend/internal/shared/middleware"
	"catalog-review-backend/pkg/jwt"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req user.SignupRequest) (*user.SignupResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.SignupResponse), args.Error(1)
}

func (m *MockAuthService) Token(ctx context.Context, req user.TokenRequest) (*user.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.TokenResponse), args.Error(1)
}

func setupAPIRouter(svc user.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	api := mountAPI(v1, userHandler.NewAuthHandler(svc),
		middleware.NewRateLimiter(100, 100),
		middleware.AuthMiddleware(jwt.NewManager("server-secret", time.Hour), nil),
	)
	api.GET("/users/me", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

// staleToken is signed with a key the server does not accept
func staleToken(t *testing.T) string {
	t.Helper()
	token, _, err := jwt.NewManager("rotated-secret", time.Hour).
		GenerateAccessToken("00000000-0000-0000-0000-000000000001", "alice", "user")
	require.NoError(t, err)
	return token
}

func TestAuthRoutes_IgnoreStaleBearer(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Token", mock.Anything, user.TokenRequest{Username: "alice", ConfirmationCode: "abc"}).
		Return(&user.TokenResponse{Token: "fresh"}, nil)
	svc.On("Signup", mock.Anything, user.SignupRequest{Username: "alice", Email: "alice@example.com"}).
		Return(&user.SignupResponse{Username: "alice", Email: "alice@example.com"}, nil)
	router := setupAPIRouter(svc)

	for path, body := range map[string]string{
		"/api/v1/auth/token":  `{"username":"alice","confirmation_code":"abc"}`,
		"/api/v1/auth/signup": `{"username":"alice","email":"alice@example.com"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+staleToken(t))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
	}
	svc.AssertExpectations(t)
}

func TestProtectedRoutes_RejectStaleBearer(t *testing.T) {
	router := setupAPIRouter(new(MockAuthService))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+staleToken(t))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
