package router

import (
	"github.com/labstack/echo/v4"

	"osta/internal/adapter/api/handler"
	"osta/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	upload := e.Group("/v1/upload")
	upload.Use(authMiddleware.Authenticate)

	upload.POST("", fileHandler.Upload)
	upload.POST("/chat", fileHandler.UploadChat)
	upload.DELETE("", fileHandler.Delete)
}
