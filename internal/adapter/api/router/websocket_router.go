package router

import (
	"github.com/labstack/echo/v4"

	"osta/internal/adapter/api/handler"
	"osta/internal/adapter/api/middleware"
)

func SetupWebSocketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	websocketHandler := handler.GetWebSocketHandler()

	e.GET("/ws", websocketHandler.Connect, authMiddleware.OptionalAuthenticate)
}
