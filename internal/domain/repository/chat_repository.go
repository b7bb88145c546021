package repository

import (
	"context"
	"time"

	"osta/internal/domain/entity"
)

// ChatRepository is the store contract for chat threads. The chat document is
// keyed by request id, so at most one chat can ever exist per request. Every
// mutating method here is a single atomic read-modify-or-insert operation on
// that document; callers must not emulate them with check-then-act pairs.
type ChatRepository interface {
	// GetByRequestID returns a NotFound error when no thread exists.
	GetByRequestID(ctx context.Context, requestID string) (*entity.Chat, error)
	// GetByRequestIDs batch-loads threads; absent ids are missing from the map.
	GetByRequestIDs(ctx context.Context, requestIDs []string) (map[string]*entity.Chat, error)

	// EnsureWithSeed creates the thread if absent and guarantees the seed
	// text appears as a system message exactly once. An empty seedText only
	// ensures the thread exists. Idempotent.
	EnsureWithSeed(ctx context.Context, requestID, userID, providerID, seedText string) (*entity.Chat, error)

	// AppendMessage appends to the thread, creating it first when absent.
	// Fails with a Conflict error when the thread is closed; the closed
	// check and the append happen in the same transaction.
	AppendMessage(ctx context.Context, requestID, userID, providerID string, message entity.Message) (*entity.Chat, error)

	// MarkSeen flags every message not sent by viewerID as seen. Returns
	// (nil, nil) when the thread does not exist.
	MarkSeen(ctx context.Context, requestID, viewerID string) (*entity.Chat, error)

	// Close transitions the thread to closed; closing an already closed
	// thread leaves it untouched.
	Close(ctx context.Context, requestID string, closedAt time.Time) (*entity.Chat, error)

	// SetReviewed raises the party's reviewed flag.
	SetReviewed(ctx context.Context, requestID string, party entity.Party) (*entity.Chat, error)
}
