package handler

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"osta/internal/infrastructure/websocket"
	"osta/pkg/logger"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	manager *websocket.Manager
}

func NewWebSocketHandler(manager *websocket.Manager) *WebSocketHandler {
	return &WebSocketHandler{manager: manager}
}

// Connect upgrades the request and starts the client's pumps. The identity
// comes from the optional auth middleware; anonymous sockets are allowed and
// identify themselves per event.
func (h *WebSocketHandler) Connect(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("websocket upgrade failed: %v", err)
		return err
	}

	userID, _ := c.Get("uid").(string)
	client := websocket.NewClient(conn, userID)

	h.manager.Register <- client

	go client.WritePump()
	go client.ReadPump(h.manager)

	return nil
}
