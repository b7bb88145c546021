package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"osta/internal/domain/entity"
	"osta/pkg/errors"
)

// In-memory repository fakes mirroring the store contracts, so the use case
// state machines can be exercised without a Firestore emulator.

type fakeChatRepo struct {
	chats map[string]*entity.Chat
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{chats: make(map[string]*entity.Chat)}
}

func (r *fakeChatRepo) GetByRequestID(ctx context.Context, requestID string) (*entity.Chat, error) {
	chat, ok := r.chats[requestID]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}
	return chat, nil
}

func (r *fakeChatRepo) GetByRequestIDs(ctx context.Context, requestIDs []string) (map[string]*entity.Chat, error) {
	result := make(map[string]*entity.Chat)
	for _, id := range requestIDs {
		if chat, ok := r.chats[id]; ok {
			result[id] = chat
		}
	}
	return result, nil
}

func systemSeed(senderID, text string) entity.Message {
	return entity.Message{
		ID:        uuid.New().String(),
		SenderID:  senderID,
		Text:      text,
		Type:      entity.MessageTypeText,
		Delivered: true,
		Seen:      true,
		System:    true,
		CreatedAt: time.Now(),
	}
}

func (r *fakeChatRepo) EnsureWithSeed(ctx context.Context, requestID, userID, providerID, seedText string) (*entity.Chat, error) {
	chat, ok := r.chats[requestID]
	if !ok {
		chat = &entity.Chat{
			ID:         uuid.New().String(),
			RequestID:  requestID,
			UserID:     userID,
			ProviderID: providerID,
			Status:     entity.ChatStatusOpen,
			Messages:   []entity.Message{},
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		r.chats[requestID] = chat
	}
	if seedText != "" && !chat.HasSystemMessage(seedText) {
		chat.Messages = append([]entity.Message{systemSeed(chat.UserID, seedText)}, chat.Messages...)
	}
	return chat, nil
}

func (r *fakeChatRepo) AppendMessage(ctx context.Context, requestID, userID, providerID string, message entity.Message) (*entity.Chat, error) {
	chat, ok := r.chats[requestID]
	if !ok {
		chat = &entity.Chat{
			ID:         uuid.New().String(),
			RequestID:  requestID,
			UserID:     userID,
			ProviderID: providerID,
			Status:     entity.ChatStatusOpen,
			Messages:   []entity.Message{},
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		r.chats[requestID] = chat
	}
	if chat.Status == entity.ChatStatusClosed {
		return nil, errors.Conflict("Chat is closed. You cannot send messages.")
	}
	chat.Messages = append(chat.Messages, message)
	return chat, nil
}

func (r *fakeChatRepo) MarkSeen(ctx context.Context, requestID, viewerID string) (*entity.Chat, error) {
	chat, ok := r.chats[requestID]
	if !ok {
		return nil, nil
	}
	for i := range chat.Messages {
		if chat.Messages[i].SenderID != viewerID {
			chat.Messages[i].Seen = true
		}
	}
	return chat, nil
}

func (r *fakeChatRepo) Close(ctx context.Context, requestID string, closedAt time.Time) (*entity.Chat, error) {
	chat, ok := r.chats[requestID]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}
	if chat.Status != entity.ChatStatusClosed {
		chat.Status = entity.ChatStatusClosed
		chat.ClosedAt = &closedAt
	}
	return chat, nil
}

func (r *fakeChatRepo) SetReviewed(ctx context.Context, requestID string, party entity.Party) (*entity.Chat, error) {
	chat, ok := r.chats[requestID]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}
	if party == entity.PartyUser {
		chat.UserReviewed = true
	} else {
		chat.ProviderReviewed = true
	}
	return chat, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	order      []string
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.categories[category.ID] = category
	r.order = append(r.order, category.ID)
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	return category, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) List(ctx context.Context, q string, limit, offset int) ([]*entity.Category, int64, error) {
	var matched []*entity.Category
	for _, id := range r.order {
		if category, ok := r.categories[id]; ok {
			matched = append(matched, category)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return []*entity.Category{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

type fakeRequestRepo struct {
	requests map[string]*entity.Request
	order    []string
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*entity.Request)}
}

func (r *fakeRequestRepo) Create(ctx context.Context, request *entity.Request) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	r.requests[request.ID] = request
	r.order = append(r.order, request.ID)
	return nil
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, errors.NotFound("Request", nil)
	}
	return request, nil
}

func (r *fakeRequestRepo) listBy(match func(*entity.Request) bool) []*entity.Request {
	var result []*entity.Request
	for i := len(r.order) - 1; i >= 0; i-- {
		if request := r.requests[r.order[i]]; match(request) {
			result = append(result, request)
		}
	}
	return result
}

func (r *fakeRequestRepo) ListByUserID(ctx context.Context, userID string) ([]*entity.Request, error) {
	return r.listBy(func(req *entity.Request) bool { return req.UserID == userID }), nil
}

func (r *fakeRequestRepo) ListByProviderID(ctx context.Context, providerID string) ([]*entity.Request, error) {
	return r.listBy(func(req *entity.Request) bool { return req.ProviderID == providerID }), nil
}

func (r *fakeRequestRepo) UpdateStatus(ctx context.Context, id, status string) (*entity.Request, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, errors.NotFound("Request", nil)
	}
	request.Status = status
	request.UpdatedAt = time.Now()
	return request, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	result := make(map[string]*entity.User)
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			result[id] = user
		}
	}
	return result, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) AppendRating(ctx context.Context, id string, review entity.UserReview) error {
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.Ratings = append(user.Ratings, review.Rating)
	user.Reviews = append(user.Reviews, review)
	return nil
}

type fakeProviderRepo struct {
	providers map[string]*entity.Provider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: make(map[string]*entity.Provider)}
}

func (r *fakeProviderRepo) Create(ctx context.Context, provider *entity.Provider) error {
	if provider.ID == "" {
		provider.ID = uuid.New().String()
	}
	r.providers[provider.ID] = provider
	return nil
}

func (r *fakeProviderRepo) GetByID(ctx context.Context, id string) (*entity.Provider, error) {
	provider, ok := r.providers[id]
	if !ok {
		return nil, errors.NotFound("Provider", nil)
	}
	return provider, nil
}

func (r *fakeProviderRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Provider, error) {
	result := make(map[string]*entity.Provider)
	for _, id := range ids {
		if provider, ok := r.providers[id]; ok {
			result[id] = provider
		}
	}
	return result, nil
}

func (r *fakeProviderRepo) GetByEmail(ctx context.Context, email string) (*entity.Provider, error) {
	for _, provider := range r.providers {
		if provider.Email == email {
			return provider, nil
		}
	}
	return nil, errors.NotFound("Provider", nil)
}

func (r *fakeProviderRepo) List(ctx context.Context) ([]*entity.Provider, error) {
	var providers []*entity.Provider
	for _, provider := range r.providers {
		providers = append(providers, provider)
	}
	return providers, nil
}

func (r *fakeProviderRepo) Update(ctx context.Context, provider *entity.Provider) error {
	r.providers[provider.ID] = provider
	return nil
}

func (r *fakeProviderRepo) Delete(ctx context.Context, id string) error {
	delete(r.providers, id)
	return nil
}

func (r *fakeProviderRepo) AppendRating(ctx context.Context, id string, rating float64, review string) error {
	provider, ok := r.providers[id]
	if !ok {
		return errors.NotFound("Provider", nil)
	}
	provider.Ratings = append(provider.Ratings, rating)
	if review != "" {
		provider.Reviews = append(provider.Reviews, review)
	}
	return nil
}
