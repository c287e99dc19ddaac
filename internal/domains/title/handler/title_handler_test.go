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
	"github.com/stretchr/testify/require"

	"catalog-review-backend/internal/domains/taxonomy"
	"catalog-review-backend/internal/domains/title"
	"catalog-review-backend/internal/shared/middleware"
	"catalog-review-backend/internal/shared/policy"
	"catalog-review-backend/internal/shared/resource"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, filter title.ListFilter) ([]title.Title, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]title.Title), args.Get(1).(int64), args.Error(2)
}

func (m *MockService) Get(ctx context.Context, id uuid.UUID) (*title.Title, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*title.Title), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, req title.CreateTitleRequest) (*title.Title, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*title.Title), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id uuid.UUID, req title.UpdateTitleRequest) (*title.Title, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*title.Title), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func setupRouter(svc title.Service, actor policy.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetActor(c, actor)
		c.Next()
	})
	resource.Mount(r.Group("/titles", middleware.Authorize(policy.Catalog)), TitleParam, resource.CRUD, NewTitleHandler(svc).Routes())
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
	admin = policy.Authenticated(uuid.New(), "admin", policy.RoleAdmin, false)
	user  = policy.Authenticated(uuid.New(), "bob", policy.RoleUser, false)
)

func TestList_FiltersAndPaging(t *testing.T) {
	svc := new(MockService)
	year := 1866
	svc.On("List", mock.Anything, title.ListFilter{
		Category: "Books", Genre: "drama", Name: "crime", Year: &year, Limit: 5, Offset: 5,
	}).Return([]title.Title{}, int64(0), nil)

	w := do(setupRouter(svc, policy.Anonymous()), http.MethodGet,
		"/titles?category=Books&genre=drama&name=crime&year=1866&page=2&limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestList_BadYear(t *testing.T) {
	w := do(setupRouter(new(MockService), policy.Anonymous()), http.MethodGet, "/titles?year=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"year"`)
}

func TestGet_Shape(t *testing.T) {
	svc := new(MockService)
	id := uuid.New()
	rating := 6.67
	svc.On("Get", mock.Anything, id).Return(&title.Title{
		ID: id, Name: "Dune", Year: 1965, Rating: &rating,
		Genres:   []taxonomy.Term{{Name: "Sci-Fi", Slug: "sci-fi"}},
		Category: &taxonomy.Term{Name: "Books", Slug: "books"},
	}, nil)

	w := do(setupRouter(svc, policy.Anonymous()), http.MethodGet, "/titles/"+id.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{
		"id":"`+id.String()+`","name":"Dune","year":1965,"rating":6.67,"description":"",
		"genre":[{"name":"Sci-Fi","slug":"sci-fi"}],
		"category":{"name":"Books","slug":"books"}}}`, w.Body.String())
}

func TestGet_NullRating(t *testing.T) {
	svc := new(MockService)
	id := uuid.New()
	svc.On("Get", mock.Anything, id).Return(&title.Title{ID: id, Name: "New", Genres: []taxonomy.Term{}}, nil)

	w := do(setupRouter(svc, policy.Anonymous()), http.MethodGet, "/titles/"+id.String(), nil)

	assert.Contains(t, w.Body.String(), `"rating":null`)
	assert.Contains(t, w.Body.String(), `"category":null`)
}

func TestGet_MalformedID(t *testing.T) {
	w := do(setupRouter(new(MockService), policy.Anonymous()), http.MethodGet, "/titles/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreate_AdminOnly(t *testing.T) {
	body := map[string]interface{}{"name": "Dune", "year": 1965}

	assert.Equal(t, http.StatusUnauthorized, do(setupRouter(new(MockService), policy.Anonymous()), http.MethodPost, "/titles", body).Code)
	assert.Equal(t, http.StatusForbidden, do(setupRouter(new(MockService), user), http.MethodPost, "/titles", body).Code)

	svc := new(MockService)
	svc.On("Create", mock.Anything, mock.AnythingOfType("title.CreateTitleRequest")).Return(&title.Title{Name: "Dune"}, nil)
	assert.Equal(t, http.StatusCreated, do(setupRouter(svc, admin), http.MethodPost, "/titles", body).Code)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := new(MockService)
	id := uuid.New()
	svc.On("Update", mock.Anything, id, mock.Anything).Return(&title.Title{ID: id}, nil)
	svc.On("Delete", mock.Anything, id).Return(nil)
	r := setupRouter(svc, admin)

	assert.Equal(t, http.StatusOK, do(r, http.MethodPatch, "/titles/"+id.String(), map[string]string{"name": "X"}).Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/titles/"+id.String(), nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/titles/"+id.String(), map[string]string{}).Code)
}

func TestDelete_ModeratorForbidden(t *testing.T) {
	mod := policy.Authenticated(uuid.New(), "mod", policy.RoleModerator, false)

	w := do(setupRouter(new(MockService), mod), http.MethodDelete, "/titles/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
