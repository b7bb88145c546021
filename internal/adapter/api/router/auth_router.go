package router

import (
	"github.com/labstack/echo/v4"

	"osta/internal/adapter/api/handler"
	"osta/internal/adapter/api/middleware"
	"osta/internal/infrastructure/ratelimit"
)

func SetupAuthRouter(e *echo.Echo, limiter *ratelimit.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.Use(middleware.RateLimitMiddleware(limiter, "auth"))

	auth.POST("/register", authHandler.RegisterUser)
	auth.POST("/login", authHandler.LoginUser)
	auth.POST("/provider/register", authHandler.RegisterProvider)
	auth.POST("/provider/login", authHandler.LoginProvider)
}
