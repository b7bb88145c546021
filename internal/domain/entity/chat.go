package entity

import (
	"strings"
	"time"
)

const (
	ChatStatusOpen   = "open"
	ChatStatusClosed = "closed"
)

const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
	MessageTypeFile  = "file"
)

// Party identifies which side of a chat an actor is on.
type Party string

const (
	PartyUser     Party = "user"
	PartyProvider Party = "provider"
)

// Chat is the message thread tied one-to-one to a request. The thread owns
// its messages; ordering is insertion order.
type Chat struct {
	ID         string `json:"id" firestore:"id"`
	RequestID  string `json:"request_id" firestore:"requestId"`
	UserID     string `json:"user_id" firestore:"userId"`
	ProviderID string `json:"provider_id" firestore:"providerId"`

	Status   string     `json:"status" firestore:"status"`
	ClosedAt *time.Time `json:"closed_at" firestore:"closedAt"`

	UserReviewed     bool `json:"user_reviewed" firestore:"userReviewed"`
	ProviderReviewed bool `json:"provider_reviewed" firestore:"providerReviewed"`

	Messages []Message `json:"messages" firestore:"messages"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Message struct {
	ID        string    `json:"id" firestore:"id"`
	SenderID  string    `json:"sender_id" firestore:"senderId"`
	Text      string    `json:"text" firestore:"text"`
	Type      string    `json:"type" firestore:"type"`
	FileURL   string    `json:"file_url" firestore:"fileUrl"`
	Delivered bool      `json:"delivered" firestore:"delivered"`
	Seen      bool      `json:"seen" firestore:"seen"`
	System    bool      `json:"system" firestore:"system"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// ParticipantRole resolves an actor id against the chat's two parties using
// strict comparison. The second result is false for non-participants.
func (c *Chat) ParticipantRole(id string) (Party, bool) {
	switch {
	case id != "" && id == c.UserID:
		return PartyUser, true
	case id != "" && id == c.ProviderID:
		return PartyProvider, true
	default:
		return "", false
	}
}

// Reviewed reports whether the given party already submitted (or skipped)
// its review for this chat.
func (c *Chat) Reviewed(party Party) bool {
	if party == PartyUser {
		return c.UserReviewed
	}
	return c.ProviderReviewed
}

// HasSystemMessage reports whether the thread already carries the seeded
// request text. Comparison ignores surrounding whitespace.
func (c *Chat) HasSystemMessage(text string) bool {
	want := strings.TrimSpace(text)
	for _, m := range c.Messages {
		if m.System && strings.TrimSpace(m.Text) == want {
			return true
		}
	}
	return false
}
