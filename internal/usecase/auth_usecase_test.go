package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osta/internal/infrastructure/auth"
	"osta/pkg/errors"
)

func newAuthUseCase() (*AuthUseCase, *fakeUserRepo, *fakeProviderRepo) {
	userRepo := newFakeUserRepo()
	providerRepo := newFakeProviderRepo()
	tm := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthUseCase(userRepo, providerRepo, tm), userRepo, providerRepo
}

func TestRegisterAndLoginUser(t *testing.T) {
	uc, _, _ := newAuthUseCase()
	ctx := context.Background()

	user, token, err := uc.RegisterUser(ctx, RegisterUserInput{
		Name:     "Lina",
		Email:    "Lina@Example.com",
		Password: "hunter22!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "lina@example.com", user.Email, "emails are normalized")
	assert.NotEqual(t, "hunter22!", user.Password, "password is hashed")

	_, token, err = uc.LoginUser(ctx, "lina@example.com", "hunter22!")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, _, err = uc.LoginUser(ctx, "lina@example.com", "wrong")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	_, _, err = uc.LoginUser(ctx, "nobody@example.com", "hunter22!")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthUseCase()
	ctx := context.Background()

	_, _, err := uc.RegisterUser(ctx, RegisterUserInput{Name: "A", Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	_, _, err = uc.RegisterUser(ctx, RegisterUserInput{Name: "B", Email: "A@example.com", Password: "password2"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRegisterProviderCategoryFallback(t *testing.T) {
	uc, _, _ := newAuthUseCase()
	ctx := context.Background()

	provider, _, err := uc.RegisterProvider(ctx, RegisterProviderInput{
		Name:       "Sami",
		Email:      "sami@example.com",
		Password:   "password1",
		Categories: []string{"plumbing", "electrical"},
	})
	require.NoError(t, err)
	assert.Equal(t, "plumbing", provider.Category, "legacy field filled from the list")

	_, _, err = uc.RegisterProvider(ctx, RegisterProviderInput{
		Name:     "NoCategory",
		Email:    "x@example.com",
		Password: "password1",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
