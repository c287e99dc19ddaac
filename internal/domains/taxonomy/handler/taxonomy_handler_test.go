package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"catalog-review-backend/internal/domains/taxonomy"
	"catalog-review-backend/internal/shared/middleware"
	"catalog-review-backend/internal/shared/policy"
	"catalog-review-backend/internal/shared/resource"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, search string, limit, offset int) ([]taxonomy.Term, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]taxonomy.Term), args.Get(1).(int64), args.Error(2)
}

func (m *MockService) Create(ctx context.Context, req taxonomy.CreateTermRequest) (*taxonomy.Term, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.Term), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func setupRouter(svc taxonomy.Service, actor policy.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetActor(c, actor)
		c.Next()
	})
	resource.Mount(r.Group("/genres", middleware.Authorize(policy.Catalog)), SlugParam, Capabilities, NewTermHandler(svc).Routes())
	return r
}

func do(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var (
	admin     = policy.Authenticated(uuid.New(), "root", policy.RoleUser, true)
	moderator = policy.Authenticated(uuid.New(), "mod", policy.RoleModerator, false)
)

func TestList_Public(t *testing.T) {
	svc := new(MockService)
	svc.On("List", mock.Anything, "ro", 10, 0).Return([]taxonomy.Term{{Name: "Rock", Slug: "rock"}}, int64(1), nil)

	w := do(setupRouter(svc, policy.Anonymous()), http.MethodGet, "/genres?search=ro", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[{"name":"Rock","slug":"rock"}],"meta":{"page":1,"limit":10,"total":1}}`, w.Body.String())
}

func TestCreate_RequiresAdmin(t *testing.T) {
	body := map[string]string{"name": "Rock", "slug": "rock"}

	assert.Equal(t, http.StatusUnauthorized, do(setupRouter(new(MockService), policy.Anonymous()), http.MethodPost, "/genres", body).Code)
	assert.Equal(t, http.StatusForbidden, do(setupRouter(new(MockService), moderator), http.MethodPost, "/genres", body).Code)

	svc := new(MockService)
	svc.On("Create", mock.Anything, taxonomy.CreateTermRequest{Name: "Rock", Slug: "rock"}).
		Return(&taxonomy.Term{Name: "Rock", Slug: "rock"}, nil)
	w := do(setupRouter(svc, admin), http.MethodPost, "/genres", body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreate_Conflict(t *testing.T) {
	svc := new(MockService)
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, taxonomy.SlugTaken(taxonomy.Genres))

	w := do(setupRouter(svc, admin), http.MethodPost, "/genres", map[string]string{"name": "Rock", "slug": "rock"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"slug"`)
}

func TestDelete(t *testing.T) {
	svc := new(MockService)
	svc.On("Delete", mock.Anything, "rock").Return(nil)
	svc.On("Delete", mock.Anything, "jazz").Return(taxonomy.NotFound(taxonomy.Genres))
	r := setupRouter(svc, admin)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/genres/rock", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/genres/jazz", nil).Code)
}

func TestUnsupportedRoutes(t *testing.T) {
	r := setupRouter(new(MockService), admin)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/genres/rock", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPatch, "/genres/rock", map[string]string{}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/genres/rock", map[string]string{}).Code)
}
