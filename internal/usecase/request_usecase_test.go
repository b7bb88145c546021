package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osta/internal/domain/entity"
	"osta/pkg/errors"
)

func newRequestFixture(t *testing.T) (*RequestUseCase, *chatFixture) {
	t.Helper()
	f := newChatFixture(t)
	uc := NewRequestUseCase(f.requestRepo, f.chatRepo, f.userRepo, f.providerRepo, f.uc)
	return uc, f
}

func TestCreateRequestValidation(t *testing.T) {
	uc, f := newRequestFixture(t)
	ctx := context.Background()

	_, err := uc.CreateRequest(ctx, "", f.provider.ID, "help")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.CreateRequest(ctx, f.user.ID, "", "help")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	request, err := uc.CreateRequest(ctx, f.user.ID, f.provider.ID, "help")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, request.Status)
	assert.NotEmpty(t, request.ID)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc, f := newRequestFixture(t)

	_, err := uc.UpdateStatus(context.Background(), f.request.ID, "cancelled")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.UpdateStatus(context.Background(), "no-such-id", entity.RequestStatusAccepted)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestAcceptBootstrapsChat(t *testing.T) {
	uc, f := newRequestFixture(t)
	ctx := context.Background()

	request, err := uc.UpdateStatus(ctx, f.request.ID, entity.RequestStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAccepted, request.Status)

	chat, err := f.chatRepo.GetByRequestID(ctx, f.request.ID)
	require.NoError(t, err)
	require.Len(t, chat.Messages, 1)
	assert.True(t, chat.Messages[0].System)
	assert.Equal(t, f.request.Message, chat.Messages[0].Text)

	// A repeated accept leaves the seeded thread untouched.
	_, err = uc.UpdateStatus(ctx, f.request.ID, entity.RequestStatusAccepted)
	require.NoError(t, err)
	chat, err = f.chatRepo.GetByRequestID(ctx, f.request.ID)
	require.NoError(t, err)
	assert.Len(t, chat.Messages, 1)
}

func TestDeclineDoesNotCreateChat(t *testing.T) {
	uc, f := newRequestFixture(t)
	ctx := context.Background()

	_, err := uc.UpdateStatus(ctx, f.request.ID, entity.RequestStatusDeclined)
	require.NoError(t, err)

	_, err = f.chatRepo.GetByRequestID(ctx, f.request.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListingsJoinPartiesAndChatState(t *testing.T) {
	uc, f := newRequestFixture(t)
	ctx := context.Background()

	_, err := uc.UpdateStatus(ctx, f.request.ID, entity.RequestStatusAccepted)
	require.NoError(t, err)
	_, err = f.uc.CloseChat(ctx, f.request.ID, f.user.ID)
	require.NoError(t, err)

	second, err := uc.CreateRequest(ctx, f.user.ID, f.provider.ID, "second job")
	require.NoError(t, err)

	forUser, err := uc.ListForUser(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, forUser, 2)

	// Newest first.
	assert.Equal(t, second.ID, forUser[0].ID)
	assert.Equal(t, entity.ChatStatusOpen, forUser[0].ChatStatus, "no chat yet defaults to open")
	assert.Equal(t, entity.ChatStatusClosed, forUser[1].ChatStatus)
	assert.Equal(t, f.user.Name, forUser[0].UserName)
	assert.Equal(t, f.provider.Name, forUser[0].ProviderName)
	require.NotNil(t, forUser[0].Provider)

	forProvider, err := uc.ListForProvider(ctx, f.provider.ID)
	require.NoError(t, err)
	assert.Len(t, forProvider, 2)
}
