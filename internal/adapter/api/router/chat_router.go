package router

import (
	"github.com/labstack/echo/v4"

	"osta/internal/adapter/api/handler"
)

func SetupChatRouter(e *echo.Echo) {
	chatHandler := handler.GetChatHandler()

	chats := e.Group("/v1/chats")

	chats.GET("/:requestId", chatHandler.GetThread)
	chats.POST("/:requestId/messages", chatHandler.SendMessage)
	chats.POST("/:requestId/seen", chatHandler.MarkSeen)
	chats.POST("/:requestId/close", chatHandler.Close)
	chats.POST("/:requestId/review", chatHandler.Review)
}
