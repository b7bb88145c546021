package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"osta/pkg/errors"
	"osta/pkg/response"
)

type AdminMiddleware struct {
	adminKey string
}

func NewAdminMiddleware(adminKey string) *AdminMiddleware {
	return &AdminMiddleware{adminKey: adminKey}
}

// AdminOnly gates catalog and user administration behind the shared admin
// key, passed as the x-admin-key header or an adminKey query parameter.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.adminKey == "" {
			return response.Error(c, errors.Forbidden("Admin access is not configured", nil))
		}

		key := c.Request().Header.Get("x-admin-key")
		if key == "" {
			key = c.QueryParam("adminKey")
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(m.adminKey)) != 1 {
			return response.Error(c, errors.Forbidden("Admin key required", nil))
		}
		return next(c)
	}
}
