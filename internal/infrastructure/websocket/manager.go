package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"osta/internal/domain/entity"
	"osta/internal/infrastructure/ratelimit"
	"osta/internal/usecase"
	"osta/pkg/logger"
)

// ChatService is the slice of the chat use case the socket layer needs.
type ChatService interface {
	EnsureThread(ctx context.Context, requestID string) (*entity.Chat, error)
	SendMessage(ctx context.Context, input usecase.SendMessageInput) (*entity.Chat, error)
	MarkSeen(ctx context.Context, requestID, viewerID string) (*entity.Chat, error)
}

// Client is one WebSocket connection. UserID is empty for anonymous sockets;
// rate limiting then falls back to the connection id.
type Client struct {
	ID     string
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

func NewClient(conn *websocket.Conn, userID string) *Client {
	return &Client{
		ID:     uuid.New().String(),
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 32),
	}
}

func (c *Client) limitKey() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.ID
}

// RoomRegistry tracks which connections are in which chat room. Rooms are
// keyed by request id, matching the one-thread-per-request storage model.
type RoomRegistry struct {
	rooms map[string]map[*Client]bool
	mutex sync.RWMutex
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{rooms: make(map[string]map[*Client]bool)}
}

func (r *RoomRegistry) Join(requestID string, client *Client) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.rooms[requestID] == nil {
		r.rooms[requestID] = make(map[*Client]bool)
	}
	r.rooms[requestID][client] = true
}

func (r *RoomRegistry) Leave(requestID string, client *Client) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.rooms[requestID], client)
	if len(r.rooms[requestID]) == 0 {
		delete(r.rooms, requestID)
	}
}

// LeaveAll removes a disconnected client from every room it joined.
func (r *RoomRegistry) LeaveAll(client *Client) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for requestID, members := range r.rooms {
		delete(members, client)
		if len(members) == 0 {
			delete(r.rooms, requestID)
		}
	}
}

// Members snapshots the room so broadcast never writes under the lock.
func (r *RoomRegistry) Members(requestID string) []*Client {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	members := make([]*Client, 0, len(r.rooms[requestID]))
	for client := range r.rooms[requestID] {
		members = append(members, client)
	}
	return members
}

// Manager owns all active socket connections and the room registry.
type Manager struct {
	clients    map[*Client]bool
	registry   *RoomRegistry
	Register   chan *Client
	Unregister chan *Client
	chat       ChatService
	limiter    *ratelimit.RateLimiter
	mutex      sync.RWMutex
}

func NewManager(chat ChatService, limiter *ratelimit.RateLimiter) *Manager {
	return &Manager{
		clients:    make(map[*Client]bool),
		registry:   NewRoomRegistry(),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		chat:       chat,
		limiter:    limiter,
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client] = true
				m.mutex.Unlock()
				logger.Debug("socket connected: %s", client.ID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client]; ok {
					delete(m.clients, client)
					close(client.Send)
				}
				m.mutex.Unlock()
				m.registry.LeaveAll(client)
				logger.Debug("socket disconnected: %s", client.ID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// BroadcastToRoom fans the event out to every connection in the room,
// including the sender's own.
func (m *Manager) BroadcastToRoom(requestID string, event WSMessage) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("failed to marshal %s event: %v", event.Type, err)
		return
	}

	for _, client := range m.registry.Members(requestID) {
		select {
		case client.Send <- payload:
		default:
			logger.Warn("socket %s send buffer full, dropping connection", client.ID)
			m.Unregister <- client
		}
	}
}

// ReadPump reads events off the connection until it closes.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, payload, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("socket read error: %v", err)
			}
			break
		}
		m.HandleClientMessage(c, payload)
	}
}

// WritePump drains the send channel onto the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		payload, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
		if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.Error("socket write error: %v", err)
			return
		}
	}
}
