package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"osta/internal/infrastructure/auth"
	"osta/pkg/errors"
	"osta/pkg/response"
)

type AuthMiddleware struct {
	tokenManager *auth.TokenManager
}

func NewAuthMiddleware(tokenManager *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tokenManager}
}

func (m *AuthMiddleware) extract(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", errors.Unauthorized("Authorization header is required", nil)
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.Unauthorized("Invalid authorization format", nil)
	}
	return parts[1], nil
}

// Authenticate requires a valid bearer token and stashes its identity on the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := m.extract(c)
		if err != nil {
			return response.Error(c, err)
		}

		claims, err := m.tokenManager.Verify(token)
		if err != nil {
			return response.Error(c, err)
		}

		c.Set("uid", claims.ID)
		c.Set("role", claims.Role)
		c.Set("kind", claims.Kind)
		return next(c)
	}
}

// OptionalAuthenticate resolves the identity when a token is present, either
// as a bearer header or a token query parameter (socket clients cannot set
// headers), and lets anonymous requests through untouched.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := m.extract(c)
		if err != nil {
			token = c.QueryParam("token")
		}
		if token == "" {
			return next(c)
		}

		if claims, err := m.tokenManager.Verify(token); err == nil {
			c.Set("uid", claims.ID)
			c.Set("role", claims.Role)
			c.Set("kind", claims.Kind)
		}
		return next(c)
	}
}
