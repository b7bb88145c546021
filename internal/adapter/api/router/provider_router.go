package router

import (
	"github.com/labstack/echo/v4"

	"osta/internal/adapter/api/handler"
	"osta/internal/adapter/api/middleware"
)

func SetupProviderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	providerHandler := handler.GetProviderHandler()

	providers := e.Group("/v1/providers")

	providers.GET("", providerHandler.List)
	providers.GET("/:id", providerHandler.Get)
	providers.PATCH("/:id", providerHandler.Update, authMiddleware.Authenticate)

	admin := e.Group("/v1/admin/providers")
	admin.Use(adminMiddleware.AdminOnly)

	admin.DELETE("/:id", providerHandler.Delete)
}
