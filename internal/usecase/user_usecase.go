package usecase

import (
	"context"
	"time"

	"osta/internal/domain/entity"
	"osta/internal/domain/repository"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}

type UpdateUserInput struct {
	Name   *string
	Avatar *string
	Online *bool
}

// UpdateUser applies a partial update; only non-nil fields change.
func (uc *UserUseCase) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if input.Online != nil {
		user.Online = *input.Online
		if !*input.Online {
			now := time.Now()
			user.LastSeen = &now
		}
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *UserUseCase) DeleteUser(ctx context.Context, id string) error {
	if _, err := uc.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.userRepo.Delete(ctx, id)
}
