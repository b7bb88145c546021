package router

import (
	"github.com/labstack/echo/v4"

	"osta/internal/adapter/api/handler"
	"osta/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")

	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update, authMiddleware.Authenticate)

	admin := e.Group("/v1/admin/users")
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", userHandler.List)
	admin.DELETE("/:id", userHandler.Delete)
}
