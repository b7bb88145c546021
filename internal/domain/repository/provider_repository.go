package repository

import (
	"context"

	"osta/internal/domain/entity"
)

type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.Provider) error
	GetByID(ctx context.Context, id string) (*entity.Provider, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Provider, error)
	GetByEmail(ctx context.Context, email string) (*entity.Provider, error)
	List(ctx context.Context) ([]*entity.Provider, error)
	Update(ctx context.Context, provider *entity.Provider) error
	Delete(ctx context.Context, id string) error

	// AppendRating atomically appends one rating (and an optional review
	// text) to the provider's lists.
	AppendRating(ctx context.Context, id string, rating float64, review string) error
}
