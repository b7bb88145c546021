package router

import (
	"github.com/labstack/echo/v4"

	"osta/internal/adapter/api/handler"
)

func SetupRequestRouter(e *echo.Echo) {
	requestHandler := handler.GetRequestHandler()

	requests := e.Group("/v1/requests")

	requests.POST("", requestHandler.Create)
	requests.GET("/user/:userId", requestHandler.ListForUser)
	requests.GET("/provider/:providerId", requestHandler.ListForProvider)
	requests.PATCH("/:id/status", requestHandler.UpdateStatus)
}
