package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"osta/internal/domain/entity"
	"osta/internal/domain/repository"
	"osta/pkg/errors"
	"osta/pkg/logger"
)

// ChatUseCase drives the thread lifecycle: seeding on acceptance, message
// append, seen marking, closing, and the one-shot mutual review.
type ChatUseCase struct {
	chatRepo     repository.ChatRepository
	requestRepo  repository.RequestRepository
	userRepo     repository.UserRepository
	providerRepo repository.ProviderRepository
	maxRating    float64
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	requestRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	providerRepo repository.ProviderRepository,
	maxRating float64,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:     chatRepo,
		requestRepo:  requestRepo,
		userRepo:     userRepo,
		providerRepo: providerRepo,
		maxRating:    maxRating,
	}
}

// ThreadView is what clients render: the chat (or a synthesized empty thread
// when none exists yet) joined with the originating request's text and both
// parties' avatars.
type ThreadView struct {
	ID               string           `json:"id,omitempty"`
	RequestID        string           `json:"request_id"`
	UserID           string           `json:"user_id"`
	ProviderID       string           `json:"provider_id"`
	Status           string           `json:"status"`
	ClosedAt         *time.Time       `json:"closed_at"`
	UserReviewed     bool             `json:"user_reviewed"`
	ProviderReviewed bool             `json:"provider_reviewed"`
	Messages         []entity.Message `json:"messages"`
	RequestMessage   string           `json:"request_message"`
	UserAvatar       string           `json:"user_avatar"`
	ProviderAvatar   string           `json:"provider_avatar"`
}

// GetThread never fails with NotFound: a request without a chat is a valid,
// displayable state and comes back as an empty thread.
func (uc *ChatUseCase) GetThread(ctx context.Context, requestID string) (*ThreadView, error) {
	chat, err := uc.chatRepo.GetByRequestID(ctx, requestID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	var requestMessage, reqUserID, reqProviderID string
	if request, err := uc.requestRepo.GetByID(ctx, requestID); err == nil {
		requestMessage = request.Message
		reqUserID = request.UserID
		reqProviderID = request.ProviderID
	}

	view := &ThreadView{
		RequestID:      requestID,
		UserID:         reqUserID,
		ProviderID:     reqProviderID,
		Status:         entity.ChatStatusOpen,
		Messages:       []entity.Message{},
		RequestMessage: requestMessage,
	}

	if chat != nil {
		view.ID = chat.ID
		view.UserID = chat.UserID
		view.ProviderID = chat.ProviderID
		view.Status = chat.Status
		view.ClosedAt = chat.ClosedAt
		view.UserReviewed = chat.UserReviewed
		view.ProviderReviewed = chat.ProviderReviewed
		if chat.Messages != nil {
			view.Messages = chat.Messages
		}
	}

	if user, err := uc.userRepo.GetByID(ctx, view.UserID); err == nil {
		view.UserAvatar = user.Avatar
	}
	if provider, err := uc.providerRepo.GetByID(ctx, view.ProviderID); err == nil {
		view.ProviderAvatar = provider.Avatar
	}

	return view, nil
}

type SendMessageInput struct {
	RequestID string
	SenderID  string
	Text      string
	Type      string
	FileURL   string
}

// SendMessage appends to the thread, creating it on the fly when it does not
// exist yet. Closed threads reject the message.
func (uc *ChatUseCase) SendMessage(ctx context.Context, input SendMessageInput) (*entity.Chat, error) {
	if input.SenderID == "" || (input.Text == "" && input.FileURL == "") {
		return nil, errors.BadRequest("Missing fields", nil)
	}

	msgType := input.Type
	if msgType == "" {
		if input.FileURL != "" {
			msgType = entity.MessageTypeImage
		} else {
			msgType = entity.MessageTypeText
		}
	}

	// Party ids are only needed when the append has to create the thread.
	var userID, providerID string
	if request, err := uc.requestRepo.GetByID(ctx, input.RequestID); err == nil {
		userID = request.UserID
		providerID = request.ProviderID
	}

	message := entity.Message{
		ID:        uuid.New().String(),
		SenderID:  input.SenderID,
		Text:      input.Text,
		Type:      msgType,
		FileURL:   input.FileURL,
		Delivered: true,
		Seen:      false,
		CreatedAt: time.Now(),
	}

	return uc.chatRepo.AppendMessage(ctx, input.RequestID, userID, providerID, message)
}

// MarkSeen flags every message sent by the other party as seen. A missing
// thread is a no-op, not an error.
func (uc *ChatUseCase) MarkSeen(ctx context.Context, requestID, viewerID string) (*entity.Chat, error) {
	return uc.chatRepo.MarkSeen(ctx, requestID, viewerID)
}

func (uc *ChatUseCase) CloseChat(ctx context.Context, requestID, closerID string) (*entity.Chat, error) {
	if closerID == "" {
		return nil, errors.BadRequest("Missing closerId", nil)
	}

	chat, err := uc.chatRepo.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if _, ok := chat.ParticipantRole(closerID); !ok {
		return nil, errors.Forbidden("You cannot close this chat", nil)
	}

	if chat.Status == entity.ChatStatusClosed {
		return chat, nil
	}

	return uc.chatRepo.Close(ctx, requestID, time.Now())
}

type ReviewInput struct {
	RequestID  string
	ReviewerID string
	Rating     *float64
	Review     string
	Skip       bool
}

// SubmitReview records one party's rating of the other, or their explicit
// skip. Either way the party's reviewed flag goes up and stays up; a second
// attempt is rejected.
func (uc *ChatUseCase) SubmitReview(ctx context.Context, input ReviewInput) (*entity.Chat, error) {
	if input.ReviewerID == "" {
		return nil, errors.BadRequest("Missing reviewerId", nil)
	}

	chat, err := uc.chatRepo.GetByRequestID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}

	if chat.Status != entity.ChatStatusClosed {
		return nil, errors.BadRequest("Chat must be closed before reviewing", nil)
	}

	party, ok := chat.ParticipantRole(input.ReviewerID)
	if !ok {
		return nil, errors.Forbidden("Not part of this chat", nil)
	}

	if chat.Reviewed(party) {
		if party == entity.PartyUser {
			return nil, errors.BadRequest("User already reviewed", nil)
		}
		return nil, errors.BadRequest("Provider already reviewed", nil)
	}

	if !input.Skip {
		if input.Rating == nil {
			return nil, errors.BadRequest("Missing rating", nil)
		}
		rating := *input.Rating
		if rating < 0 || rating > uc.maxRating {
			return nil, errors.BadRequest(fmt.Sprintf("Rating must be between 0 and %g", uc.maxRating), nil)
		}

		// The rating lands on the opposite party's record. A vanished
		// target is tolerated, as a skipped write rather than a failure.
		if party == entity.PartyUser {
			err = uc.providerRepo.AppendRating(ctx, chat.ProviderID, rating, input.Review)
		} else {
			err = uc.userRepo.AppendRating(ctx, chat.UserID, entity.UserReview{
				ReviewerID: input.ReviewerID,
				Text:       input.Review,
				Rating:     rating,
				CreatedAt:  time.Now(),
			})
		}
		if err != nil {
			if !errors.Is(err, "NOT_FOUND") {
				return nil, err
			}
			logger.Warn("review target missing for chat %s, recording flag only", input.RequestID)
		}
	}

	return uc.chatRepo.SetReviewed(ctx, input.RequestID, party)
}

// EnsureChatForRequest idempotently guarantees the accepted request has a
// thread seeded with the original request text exactly once.
func (uc *ChatUseCase) EnsureChatForRequest(ctx context.Context, request *entity.Request) (*entity.Chat, error) {
	return uc.chatRepo.EnsureWithSeed(ctx, request.ID, request.UserID, request.ProviderID, request.Message)
}

// EnsureThread is the room-join variant: it creates the thread even when no
// request exists yet, so clients can open a room ahead of acceptance.
func (uc *ChatUseCase) EnsureThread(ctx context.Context, requestID string) (*entity.Chat, error) {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		return uc.chatRepo.EnsureWithSeed(ctx, requestID, "", "", "")
	}
	return uc.EnsureChatForRequest(ctx, request)
}
