package repository

import (
	"context"

	"osta/internal/domain/entity"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
	// List filters by a case-insensitive name substring when q is non-empty.
	List(ctx context.Context, q string, limit, offset int) ([]*entity.Category, int64, error)
}

type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *entity.Subcategory) error
	GetByName(ctx context.Context, name string) (*entity.Subcategory, error)
	List(ctx context.Context, category string) ([]*entity.Subcategory, error)
	Delete(ctx context.Context, id string) error
}

type RegionRepository interface {
	Create(ctx context.Context, region *entity.Region) error
	GetByCity(ctx context.Context, city string) (*entity.Region, error)
	List(ctx context.Context) ([]*entity.Region, error)
	// AddArea appends an area to the city's list if not already present.
	AddArea(ctx context.Context, city, area string) (*entity.Region, error)
}
