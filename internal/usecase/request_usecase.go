package usecase

import (
	"context"

	"osta/internal/domain/entity"
	"osta/internal/domain/repository"
	"osta/pkg/errors"
)

type RequestUseCase struct {
	requestRepo  repository.RequestRepository
	chatRepo     repository.ChatRepository
	userRepo     repository.UserRepository
	providerRepo repository.ProviderRepository
	chatUseCase  *ChatUseCase
}

func NewRequestUseCase(
	requestRepo repository.RequestRepository,
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	providerRepo repository.ProviderRepository,
	chatUseCase *ChatUseCase,
) *RequestUseCase {
	return &RequestUseCase{
		requestRepo:  requestRepo,
		chatRepo:     chatRepo,
		userRepo:     userRepo,
		providerRepo: providerRepo,
		chatUseCase:  chatUseCase,
	}
}

func (uc *RequestUseCase) CreateRequest(ctx context.Context, userID, providerID, message string) (*entity.Request, error) {
	if userID == "" || providerID == "" {
		return nil, errors.BadRequest("Missing userId or providerId", nil)
	}

	request := &entity.Request{
		UserID:     userID,
		ProviderID: providerID,
		Message:    message,
		Status:     entity.RequestStatusPending,
	}
	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// RequestMeta is a request annotated with its chat state and both parties'
// denormalized identity, ready for list rendering.
type RequestMeta struct {
	*entity.Request
	ChatStatus       string           `json:"chat_status"`
	UserReviewed     bool             `json:"user_reviewed"`
	ProviderReviewed bool             `json:"provider_reviewed"`
	User             *entity.User     `json:"user"`
	Provider         *entity.Provider `json:"provider"`
	UserName         string           `json:"user_name"`
	ProviderName     string           `json:"provider_name"`
	UserAvatar       string           `json:"user_avatar"`
	ProviderAvatar   string           `json:"provider_avatar"`
}

func (uc *RequestUseCase) ListForUser(ctx context.Context, userID string) ([]*RequestMeta, error) {
	requests, err := uc.requestRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.annotate(ctx, requests)
}

func (uc *RequestUseCase) ListForProvider(ctx context.Context, providerID string) ([]*RequestMeta, error) {
	requests, err := uc.requestRepo.ListByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return uc.annotate(ctx, requests)
}

// annotate joins chat state and party identity onto each request. All users,
// providers and chats are batch-loaded in one pass each.
func (uc *RequestUseCase) annotate(ctx context.Context, requests []*entity.Request) ([]*RequestMeta, error) {
	userIDs := make([]string, 0, len(requests))
	providerIDs := make([]string, 0, len(requests))
	requestIDs := make([]string, 0, len(requests))
	for _, r := range requests {
		userIDs = append(userIDs, r.UserID)
		providerIDs = append(providerIDs, r.ProviderID)
		requestIDs = append(requestIDs, r.ID)
	}

	users, err := uc.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	providers, err := uc.providerRepo.GetByIDs(ctx, providerIDs)
	if err != nil {
		return nil, err
	}
	chats, err := uc.chatRepo.GetByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*RequestMeta, 0, len(requests))
	for _, r := range requests {
		meta := &RequestMeta{
			Request:    r,
			ChatStatus: entity.ChatStatusOpen,
		}

		if chat, ok := chats[r.ID]; ok {
			meta.ChatStatus = chat.Status
			meta.UserReviewed = chat.UserReviewed
			meta.ProviderReviewed = chat.ProviderReviewed
		}
		if user, ok := users[r.UserID]; ok {
			meta.User = user
			meta.UserName = user.Name
			meta.UserAvatar = user.Avatar
		}
		if provider, ok := providers[r.ProviderID]; ok {
			meta.Provider = provider
			meta.ProviderName = provider.Name
			meta.ProviderAvatar = provider.Avatar
		}
		result = append(result, meta)
	}
	return result, nil
}

// UpdateStatus resolves a pending request. Acceptance bootstraps the chat
// thread before returning. Re-resolving an already resolved request is
// deliberately allowed; the bootstrap is idempotent so a repeat accept is
// harmless.
func (uc *RequestUseCase) UpdateStatus(ctx context.Context, id, newStatus string) (*entity.Request, error) {
	if newStatus != entity.RequestStatusAccepted && newStatus != entity.RequestStatusDeclined {
		return nil, errors.BadRequest("Invalid status", nil)
	}

	request, err := uc.requestRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, err
	}

	if newStatus == entity.RequestStatusAccepted {
		if _, err := uc.chatUseCase.EnsureChatForRequest(ctx, request); err != nil {
			return nil, err
		}
	}
	return request, nil
}
