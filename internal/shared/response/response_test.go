package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-review-backend/internal/shared"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func run(t *testing.T, err error) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	HandleError(c, err)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleError_Mapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"field error", shared.ConflictError("username", "taken"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"invalid code", shared.ErrInvalidCode, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", fmt.Errorf("title %w", shared.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"unauthorized", shared.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", shared.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"too many", shared.ErrTooManyAttempts, http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"unknown", errors.New("pq: connection refused"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := run(t, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestHandleError_FieldDetails(t *testing.T) {
	_, body := run(t, shared.ConflictError("email", "already registered"))

	assert.Equal(t, map[string]interface{}{"email": "already registered"}, body.Error.Details)
}

func TestHandleError_InternalNotLeaked(t *testing.T) {
	w, _ := run(t, errors.New("secret dsn postgres://u:p@db"))

	assert.NotContains(t, w.Body.String(), "postgres://")
}

func TestSuccessWithMeta_KeepsZeroTotal(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessWithMeta(c, http.StatusOK, []string{}, &Meta{Page: 1, Limit: 10, Total: 0})

	assert.JSONEq(t, `{"success":true,"data":[],"meta":{"page":1,"limit":10,"total":0}}`, w.Body.String())
}
