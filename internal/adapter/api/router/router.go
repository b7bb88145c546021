package router

import (
	"github.com/labstack/echo/v4"

	"osta/internal/adapter/api/middleware"
	"osta/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter *ratelimit.RateLimiter) {
	SetupAuthRouter(e, limiter)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
	SetupProviderRouter(e, authMiddleware, adminMiddleware)
	SetupRequestRouter(e)
	SetupChatRouter(e)
	SetupCatalogRouter(e, adminMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupWebSocketRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
