package repository

import (
	"context"

	"osta/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByIDs loads all listed users in a single batch read; missing ids are
	// simply absent from the result map.
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error

	// AppendRating atomically appends one rating event to the user's
	// ratings/reviews lists.
	AppendRating(ctx context.Context, id string, review entity.UserReview) error
}
