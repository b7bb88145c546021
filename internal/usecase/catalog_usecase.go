package usecase

import (
	"context"
	"sort"

	"osta/internal/domain/entity"
	"osta/internal/domain/repository"
	"osta/pkg/errors"
)

// CatalogUseCase manages the service taxonomy: categories, their
// subcategories, and the city/area regions providers can serve.
type CatalogUseCase struct {
	categoryRepo    repository.CategoryRepository
	subcategoryRepo repository.SubcategoryRepository
	regionRepo      repository.RegionRepository
	providerRepo    repository.ProviderRepository
}

func NewCatalogUseCase(
	categoryRepo repository.CategoryRepository,
	subcategoryRepo repository.SubcategoryRepository,
	regionRepo repository.RegionRepository,
	providerRepo repository.ProviderRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		regionRepo:      regionRepo,
		providerRepo:    providerRepo,
	}
}

func (uc *CatalogUseCase) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if name == "" {
		return nil, errors.BadRequest("Missing category name", nil)
	}

	category := &entity.Category{Name: name}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *CatalogUseCase) ListCategories(ctx context.Context, q string, limit, offset int) ([]*entity.Category, int64, error) {
	return uc.categoryRepo.List(ctx, q, limit, offset)
}

func (uc *CatalogUseCase) UpdateCategory(ctx context.Context, id, name string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		category.Name = name
	}
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	if _, err := uc.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.categoryRepo.Delete(ctx, id)
}

// ProvidersByCategory lists providers serving the category, best rated first.
func (uc *CatalogUseCase) ProvidersByCategory(ctx context.Context, category string) ([]*entity.Provider, error) {
	providers, err := uc.providerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entity.Provider, 0, len(providers))
	for _, p := range providers {
		if p.ServesCategory(category) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating() > matched[j].Rating()
	})
	return matched, nil
}

// CategoriesWithProviders returns only the categories at least one provider
// serves, so empty sections never reach the client.
func (uc *CatalogUseCase) CategoriesWithProviders(ctx context.Context) ([]*entity.Category, error) {
	categories, _, err := uc.categoryRepo.List(ctx, "", 0, 0)
	if err != nil {
		return nil, err
	}
	providers, err := uc.providerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	served := make(map[string]bool)
	for _, p := range providers {
		if p.Category != "" {
			served[p.Category] = true
		}
		for _, c := range p.Categories {
			served[c] = true
		}
	}

	result := make([]*entity.Category, 0, len(categories))
	for _, c := range categories {
		if served[c.Name] {
			result = append(result, c)
		}
	}
	return result, nil
}

// TopCategories ranks categories by how many providers serve them.
func (uc *CatalogUseCase) TopCategories(ctx context.Context, limit int) ([]*entity.Category, error) {
	categories, _, err := uc.categoryRepo.List(ctx, "", 0, 0)
	if err != nil {
		return nil, err
	}
	providers, err := uc.providerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, p := range providers {
		seen := make(map[string]bool)
		if p.Category != "" {
			seen[p.Category] = true
		}
		for _, c := range p.Categories {
			seen[c] = true
		}
		for name := range seen {
			counts[name]++
		}
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return counts[categories[i].Name] > counts[categories[j].Name]
	})

	if limit > 0 && limit < len(categories) {
		categories = categories[:limit]
	}
	return categories, nil
}

func (uc *CatalogUseCase) CreateSubcategory(ctx context.Context, name, category string) (*entity.Subcategory, error) {
	if name == "" || category == "" {
		return nil, errors.BadRequest("Missing subcategory name or category", nil)
	}
	if _, err := uc.subcategoryRepo.GetByName(ctx, name); err == nil {
		return nil, errors.BadRequest("Subcategory already exists", nil)
	}

	subcategory := &entity.Subcategory{Name: name, Category: category}
	if err := uc.subcategoryRepo.Create(ctx, subcategory); err != nil {
		return nil, err
	}
	return subcategory, nil
}

func (uc *CatalogUseCase) ListSubcategories(ctx context.Context, category string) ([]*entity.Subcategory, error) {
	return uc.subcategoryRepo.List(ctx, category)
}

func (uc *CatalogUseCase) DeleteSubcategory(ctx context.Context, id string) error {
	return uc.subcategoryRepo.Delete(ctx, id)
}

func (uc *CatalogUseCase) AddCity(ctx context.Context, city string) (*entity.Region, error) {
	if city == "" {
		return nil, errors.BadRequest("Missing city", nil)
	}
	if _, err := uc.regionRepo.GetByCity(ctx, city); err == nil {
		return nil, errors.BadRequest("City already exists", nil)
	}

	region := &entity.Region{City: city, Areas: []string{}}
	if err := uc.regionRepo.Create(ctx, region); err != nil {
		return nil, err
	}
	return region, nil
}

func (uc *CatalogUseCase) AddArea(ctx context.Context, city, area string) (*entity.Region, error) {
	if city == "" || area == "" {
		return nil, errors.BadRequest("Missing city or area", nil)
	}
	return uc.regionRepo.AddArea(ctx, city, area)
}

func (uc *CatalogUseCase) ListRegions(ctx context.Context) ([]*entity.Region, error) {
	return uc.regionRepo.List(ctx)
}
