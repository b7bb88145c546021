package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"osta/internal/domain/entity"
	"osta/internal/domain/repository"
	"osta/pkg/errors"
	"osta/pkg/logger"
)

// firestoreChatRepository stores each thread as a single document keyed by
// request id, messages nested as an array field. Every mutation runs in a
// transaction so the create-if-absent and append steps are one atomic unit.
type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) doc(requestID string) *firestore.DocumentRef {
	return r.client.Collection("chats").Doc(requestID)
}

func (r *firestoreChatRepository) GetByRequestID(ctx context.Context, requestID string) (*entity.Chat, error) {
	snap, err := r.doc(requestID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Chat", err)
		}
		return nil, errors.Internal("Failed to get chat", err)
	}

	var chat entity.Chat
	if err := snap.DataTo(&chat); err != nil {
		return nil, errors.Internal("Failed to parse chat data", err)
	}
	return &chat, nil
}

func (r *firestoreChatRepository) GetByRequestIDs(ctx context.Context, requestIDs []string) (map[string]*entity.Chat, error) {
	result := make(map[string]*entity.Chat, len(requestIDs))
	if len(requestIDs) == 0 {
		return result, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(requestIDs))
	for _, id := range requestIDs {
		if id != "" {
			refs = append(refs, r.doc(id))
		}
	}

	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Internal("Failed to batch load chats", err)
	}

	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		var chat entity.Chat
		if err := snap.DataTo(&chat); err != nil {
			logger.Error("chat repository: skipping malformed chat %s: %v", snap.Ref.ID, err)
			continue
		}
		result[chat.RequestID] = &chat
	}
	return result, nil
}

func (r *firestoreChatRepository) EnsureWithSeed(ctx context.Context, requestID, userID, providerID, seedText string) (*entity.Chat, error) {
	var result *entity.Chat

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc := r.doc(requestID)
		snap, err := tx.Get(doc)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		now := time.Now()
		seed := strings.TrimSpace(seedText)

		if status.Code(err) == codes.NotFound {
			chat := entity.Chat{
				ID:         uuid.New().String(),
				RequestID:  requestID,
				UserID:     userID,
				ProviderID: providerID,
				Status:     entity.ChatStatusOpen,
				Messages:   []entity.Message{},
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if seed != "" {
				chat.Messages = append(chat.Messages, systemMessage(userID, seedText, now))
			}
			result = &chat
			return tx.Set(doc, &chat)
		}

		var chat entity.Chat
		if err := snap.DataTo(&chat); err != nil {
			return err
		}

		if seed == "" || chat.HasSystemMessage(seedText) {
			result = &chat
			return nil
		}

		// The thread was created through another entry path before the
		// request was accepted; the original text goes to the top.
		chat.Messages = append([]entity.Message{systemMessage(chat.UserID, seedText, now)}, chat.Messages...)
		chat.UpdatedAt = now
		result = &chat
		return tx.Set(doc, &chat)
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.Internal("Failed to ensure chat", err)
	}
	return result, nil
}

func (r *firestoreChatRepository) AppendMessage(ctx context.Context, requestID, userID, providerID string, message entity.Message) (*entity.Chat, error) {
	var result *entity.Chat

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc := r.doc(requestID)
		snap, err := tx.Get(doc)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		now := time.Now()

		if status.Code(err) == codes.NotFound {
			chat := entity.Chat{
				ID:         uuid.New().String(),
				RequestID:  requestID,
				UserID:     userID,
				ProviderID: providerID,
				Status:     entity.ChatStatusOpen,
				Messages:   []entity.Message{message},
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			result = &chat
			return tx.Set(doc, &chat)
		}

		var chat entity.Chat
		if err := snap.DataTo(&chat); err != nil {
			return err
		}

		// Checked inside the transaction so a concurrent close cannot slip
		// a message into a closed thread.
		if chat.Status == entity.ChatStatusClosed {
			return errors.Conflict("Chat is closed. You cannot send messages.")
		}

		chat.Messages = append(chat.Messages, message)
		chat.UpdatedAt = now
		result = &chat
		return tx.Set(doc, &chat)
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.Internal("Failed to append message", err)
	}
	return result, nil
}

func (r *firestoreChatRepository) MarkSeen(ctx context.Context, requestID, viewerID string) (*entity.Chat, error) {
	var result *entity.Chat

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc := r.doc(requestID)
		snap, err := tx.Get(doc)
		if status.Code(err) == codes.NotFound {
			return nil
		}
		if err != nil {
			return err
		}

		var chat entity.Chat
		if err := snap.DataTo(&chat); err != nil {
			return err
		}

		changed := false
		for i := range chat.Messages {
			if chat.Messages[i].SenderID != viewerID && !chat.Messages[i].Seen {
				chat.Messages[i].Seen = true
				changed = true
			}
		}

		result = &chat
		if !changed {
			return nil
		}
		chat.UpdatedAt = time.Now()
		return tx.Set(doc, &chat)
	})
	if err != nil {
		return nil, errors.Internal("Failed to mark messages seen", err)
	}
	return result, nil
}

func (r *firestoreChatRepository) Close(ctx context.Context, requestID string, closedAt time.Time) (*entity.Chat, error) {
	var result *entity.Chat

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc := r.doc(requestID)
		snap, err := tx.Get(doc)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Chat", err)
			}
			return err
		}

		var chat entity.Chat
		if err := snap.DataTo(&chat); err != nil {
			return err
		}

		if chat.Status == entity.ChatStatusClosed {
			result = &chat
			return nil
		}

		chat.Status = entity.ChatStatusClosed
		chat.ClosedAt = &closedAt
		chat.UpdatedAt = closedAt
		result = &chat
		return tx.Set(doc, &chat)
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.Internal("Failed to close chat", err)
	}
	return result, nil
}

func (r *firestoreChatRepository) SetReviewed(ctx context.Context, requestID string, party entity.Party) (*entity.Chat, error) {
	var result *entity.Chat

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc := r.doc(requestID)
		snap, err := tx.Get(doc)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Chat", err)
			}
			return err
		}

		var chat entity.Chat
		if err := snap.DataTo(&chat); err != nil {
			return err
		}

		if party == entity.PartyUser {
			chat.UserReviewed = true
		} else {
			chat.ProviderReviewed = true
		}
		chat.UpdatedAt = time.Now()
		result = &chat
		return tx.Set(doc, &chat)
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.Internal("Failed to update review flag", err)
	}
	return result, nil
}

func systemMessage(senderID, text string, at time.Time) entity.Message {
	return entity.Message{
		ID:        uuid.New().String(),
		SenderID:  senderID,
		Text:      text,
		Type:      entity.MessageTypeText,
		Delivered: true,
		Seen:      true,
		System:    true,
		CreatedAt: at,
	}
}
