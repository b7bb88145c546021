package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osta/pkg/response"
)

func callAdminOnly(t *testing.T, adminKey string, decorate func(req *http.Request)) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/categories", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := NewAdminMiddleware(adminKey).AdminOnly(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, reached
}

func TestAdminOnlyAcceptsHeaderKey(t *testing.T) {
	rec, reached := callAdminOnly(t, "hunter2", func(req *http.Request) {
		req.Header.Set("x-admin-key", "hunter2")
	})

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnlyAcceptsQueryKey(t *testing.T) {
	rec, reached := callAdminOnly(t, "hunter2", func(req *http.Request) {
		req.URL.RawQuery = "adminKey=hunter2"
	})

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnlyRejectsWrongKey(t *testing.T) {
	rec, reached := callAdminOnly(t, "hunter2", func(req *http.Request) {
		req.Header.Set("x-admin-key", "guess")
	})

	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
	assert.Equal(t, "Admin key required", body.Error.Message)
}

func TestAdminOnlyRejectsMissingKey(t *testing.T) {
	rec, reached := callAdminOnly(t, "hunter2", nil)

	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnlyRejectsWhenUnconfigured(t *testing.T) {
	rec, reached := callAdminOnly(t, "", func(req *http.Request) {
		req.Header.Set("x-admin-key", "")
	})

	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "Admin access is not configured", body.Error.Message)
}
