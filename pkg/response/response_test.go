package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "osta/pkg/errors"
)

func record(t *testing.T, fn func(c echo.Context) error) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, fn(c))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestSuccessEnvelope(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Success(c, map[string]string{"name": "Lina"})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
	assert.NotEmpty(t, body.Timestamp)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Lina", data["name"])
}

func TestCreatedEnvelope(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Created(c, map[string]string{"id": "abc"})
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, body.Success)
}

func TestPaginatedEnvelope(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Paginated(c, []string{"a", "b"}, 41, 2, 20)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(41), data["total"])
	assert.Equal(t, float64(2), data["page"])
	assert.Equal(t, float64(20), data["pageSize"])
	assert.Equal(t, float64(3), data["totalPages"])
}

func TestErrorMapsAppErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", apperrors.NotFound("User", nil), http.StatusNotFound, "NOT_FOUND"},
		{"bad request", apperrors.BadRequest("Missing message text", nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"unauthorized", apperrors.Unauthorized("Invalid credentials", nil), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", apperrors.Forbidden("Admin key required", nil), http.StatusForbidden, "FORBIDDEN"},
		{"conflict is a 400", apperrors.Conflict("Chat is closed. You cannot send messages."), http.StatusBadRequest, "CONFLICT"},
		{"too many requests", apperrors.TooManyRequests("Rate limit exceeded"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", apperrors.Internal("boom", nil), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := record(t, func(c echo.Context) error {
				return Error(c, tc.err)
			})

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Error(c, assert.AnError)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, "An unexpected error occurred", body.Error.Message)
}

func TestErrorTranslatesValidationErrors(t *testing.T) {
	type payload struct {
		Email  string  `validate:"required,email"`
		Rating float64 `validate:"max=5"`
	}

	v := validator.New()

	t.Run("required field", func(t *testing.T) {
		err := v.Struct(payload{Rating: 3})
		require.Error(t, err)

		rec, body := record(t, func(c echo.Context) error {
			return Error(c, err)
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Equal(t, "email is required", body.Error.Message)
	})

	t.Run("max bound", func(t *testing.T) {
		err := v.Struct(payload{Email: "lina@example.com", Rating: 9})
		require.Error(t, err)

		_, body := record(t, func(c echo.Context) error {
			return Error(c, err)
		})

		require.NotNil(t, body.Error)
		assert.Equal(t, "rating must be at most 5", body.Error.Message)
	})
}
