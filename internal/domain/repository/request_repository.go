package repository

import (
	"context"

	"osta/internal/domain/entity"
)

type RequestRepository interface {
	Create(ctx context.Context, request *entity.Request) error
	GetByID(ctx context.Context, id string) (*entity.Request, error)
	// Listings are ordered newest first.
	ListByUserID(ctx context.Context, userID string) ([]*entity.Request, error)
	ListByProviderID(ctx context.Context, providerID string) ([]*entity.Request, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.Request, error)
}
