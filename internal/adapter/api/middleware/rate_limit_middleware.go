package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"osta/internal/infrastructure/ratelimit"
	"osta/pkg/logger"
)

// RateLimitMiddleware throttles HTTP requests per client IP using the same
// token buckets that guard the socket path.
func RateLimitMiddleware(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ok, wait := limiter.Allow(ip, action); !ok {
				logger.Warn("rate limited %s for %s (%s)", ip, action, wait)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(wait / time.Second),
				})
			}
			return next(c)
		}
	}
}
