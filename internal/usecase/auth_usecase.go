package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"osta/internal/domain/entity"
	"osta/internal/domain/repository"
	"osta/internal/infrastructure/auth"
	"osta/pkg/errors"
)

// AuthUseCase signs up and signs in both sides of the marketplace. Users and
// providers live in separate collections with separate credentials.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	providerRepo repository.ProviderRepository
	tokenManager *auth.TokenManager
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	providerRepo repository.ProviderRepository,
	tokenManager *auth.TokenManager,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		providerRepo: providerRepo,
		tokenManager: tokenManager,
	}
}

type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Avatar   string
}

func (uc *AuthUseCase) RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", errors.BadRequest("Email already in use", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: string(hashed),
		Role:     "user",
		Avatar:   input.Avatar,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := uc.tokenManager.Issue(user.ID, user.Role, "user")
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *AuthUseCase) LoginUser(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", errors.Unauthorized("Invalid credentials", nil)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", errors.Unauthorized("Invalid credentials", nil)
	}

	token, err := uc.tokenManager.Issue(user.ID, "user", "user")
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

type RegisterProviderInput struct {
	Name          string
	Email         string
	Password      string
	Category      string
	Categories    []string
	Subcategories []string
	Regions       entity.ProviderRegions
	Avatar        string
}

func (uc *AuthUseCase) RegisterProvider(ctx context.Context, input RegisterProviderInput) (*entity.Provider, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := uc.providerRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", errors.BadRequest("Email already in use", nil)
	}

	// Older clients send a single category; newer ones a list. Keep the
	// legacy field populated either way.
	category := input.Category
	if category == "" && len(input.Categories) > 0 {
		category = input.Categories[0]
	}
	if category == "" {
		return nil, "", errors.BadRequest("Category is required", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.Internal("Failed to hash password", err)
	}

	provider := &entity.Provider{
		Name:          strings.TrimSpace(input.Name),
		Email:         email,
		Password:      string(hashed),
		Category:      category,
		Categories:    input.Categories,
		Subcategories: input.Subcategories,
		Regions:       input.Regions,
		Avatar:        input.Avatar,
	}
	if err := uc.providerRepo.Create(ctx, provider); err != nil {
		return nil, "", err
	}

	token, err := uc.tokenManager.Issue(provider.ID, "provider", "provider")
	if err != nil {
		return nil, "", err
	}
	return provider, token, nil
}

func (uc *AuthUseCase) LoginProvider(ctx context.Context, email, password string) (*entity.Provider, string, error) {
	provider, err := uc.providerRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", errors.Unauthorized("Invalid credentials", nil)
	}
	if bcrypt.CompareHashAndPassword([]byte(provider.Password), []byte(password)) != nil {
		return nil, "", errors.Unauthorized("Invalid credentials", nil)
	}

	token, err := uc.tokenManager.Issue(provider.ID, "provider", "provider")
	if err != nil {
		return nil, "", err
	}
	return provider, token, nil
}
