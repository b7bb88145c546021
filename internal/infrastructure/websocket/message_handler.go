package websocket

import (
	"context"
	"encoding/json"
	"time"

	"osta/internal/usecase"
	"osta/pkg/logger"
)

// Inbound event types.
const (
	EventJoin    = "join"
	EventMessage = "message"
	EventSeen    = "seen"
)

// Outbound event types.
const (
	EventNewMessage  = "newMessage"
	EventMessageSeen = "messageSeen"
	EventError       = "error"
)

type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// outEvent mirrors WSMessage but carries an already-built payload.
type outEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type joinData struct {
	RequestID string `json:"requestId"`
}

type messageData struct {
	RequestID string `json:"requestId"`
	SenderID  string `json:"senderId"`
	Text      string `json:"text"`
	Type      string `json:"type"`
	FileURL   string `json:"fileUrl"`
}

type seenData struct {
	RequestID string `json:"requestId"`
	ViewerID  string `json:"viewerId"`
}

// HandleClientMessage dispatches one inbound socket event.
func (m *Manager) HandleClientMessage(client *Client, payload []byte) {
	var event WSMessage
	if err := json.Unmarshal(payload, &event); err != nil {
		m.sendErrorToClient(client, "Invalid message format")
		return
	}

	switch event.Type {
	case EventJoin:
		m.handleJoin(client, event.Data)
	case EventMessage:
		m.handleMessage(client, event.Data)
	case EventSeen:
		m.handleSeen(client, event.Data)
	default:
		logger.Debug("unknown socket event %q from %s", event.Type, client.ID)
		m.sendErrorToClient(client, "Unknown event type")
	}
}

// handleJoin subscribes the connection to the request's room and makes sure
// the thread exists, so a party can open the room before any message flows.
func (m *Manager) handleJoin(client *Client, raw json.RawMessage) {
	if ok, wait := m.limiter.Allow(client.limitKey(), "join"); !ok {
		logger.Warn("socket %s join rate limited for %s", client.ID, wait)
		m.sendErrorToClient(client, "Too many join attempts")
		return
	}

	var data joinData
	if err := json.Unmarshal(raw, &data); err != nil || data.RequestID == "" {
		m.sendErrorToClient(client, "Missing requestId")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := m.chat.EnsureThread(ctx, data.RequestID); err != nil {
		logger.Error("failed to ensure thread for %s: %v", data.RequestID, err)
		m.sendErrorToClient(client, "Failed to join chat")
		return
	}

	m.registry.Join(data.RequestID, client)
}

// handleMessage persists the message and broadcasts the updated thread to the
// room. The sender receives the broadcast too, which doubles as its ack.
func (m *Manager) handleMessage(client *Client, raw json.RawMessage) {
	if ok, wait := m.limiter.Allow(client.limitKey(), "message"); !ok {
		logger.Warn("socket %s message rate limited for %s", client.ID, wait)
		m.sendErrorToClient(client, "Too many messages")
		return
	}

	var data messageData
	if err := json.Unmarshal(raw, &data); err != nil || data.RequestID == "" {
		m.sendErrorToClient(client, "Missing requestId")
		return
	}

	senderID := data.SenderID
	if senderID == "" {
		senderID = client.UserID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chat, err := m.chat.SendMessage(ctx, usecase.SendMessageInput{
		RequestID: data.RequestID,
		SenderID:  senderID,
		Text:      data.Text,
		Type:      data.Type,
		FileURL:   data.FileURL,
	})
	if err != nil {
		m.sendErrorToClient(client, err.Error())
		return
	}

	m.BroadcastToRoom(data.RequestID, mustEvent(EventNewMessage, chat))
}

func (m *Manager) handleSeen(client *Client, raw json.RawMessage) {
	var data seenData
	if err := json.Unmarshal(raw, &data); err != nil || data.RequestID == "" {
		m.sendErrorToClient(client, "Missing requestId")
		return
	}

	viewerID := data.ViewerID
	if viewerID == "" {
		viewerID = client.UserID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chat, err := m.chat.MarkSeen(ctx, data.RequestID, viewerID)
	if err != nil {
		m.sendErrorToClient(client, err.Error())
		return
	}
	if chat == nil {
		// Nothing to mark; the thread does not exist yet.
		return
	}

	m.BroadcastToRoom(data.RequestID, mustEvent(EventMessageSeen, chat))
}

func (m *Manager) sendErrorToClient(client *Client, message string) {
	payload, err := json.Marshal(outEvent{
		Type: EventError,
		Data: map[string]string{"error": message},
	})
	if err != nil {
		return
	}

	select {
	case client.Send <- payload:
	default:
		logger.Warn("socket %s send buffer full, dropping error", client.ID)
	}
}

func mustEvent(eventType string, data interface{}) WSMessage {
	raw, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to marshal %s payload: %v", eventType, err)
		raw = []byte("null")
	}
	return WSMessage{Type: eventType, Data: raw}
}
