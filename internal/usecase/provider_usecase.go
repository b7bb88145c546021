package usecase

import (
	"context"
	"sort"

	"osta/internal/domain/entity"
	"osta/internal/domain/repository"
)

type ProviderUseCase struct {
	providerRepo repository.ProviderRepository
}

func NewProviderUseCase(providerRepo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{providerRepo: providerRepo}
}

func (uc *ProviderUseCase) GetProvider(ctx context.Context, id string) (*entity.Provider, error) {
	return uc.providerRepo.GetByID(ctx, id)
}

// ProviderFilter narrows the directory listing. All fields are optional and
// combine with AND semantics.
type ProviderFilter struct {
	Category    string
	Subcategory string
	City        string
	Area        string
	MinRating   float64
}

// ListProviders filters in memory after a full collection read. The directory
// is small enough that Firestore-side composite indexes are not worth the
// operational cost yet.
func (uc *ProviderUseCase) ListProviders(ctx context.Context, filter ProviderFilter) ([]*entity.Provider, error) {
	providers, err := uc.providerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entity.Provider, 0, len(providers))
	for _, p := range providers {
		if filter.Category != "" && !p.ServesCategory(filter.Category) {
			continue
		}
		if filter.Subcategory != "" && !containsString(p.Subcategories, filter.Subcategory) {
			continue
		}
		if (filter.City != "" || filter.Area != "") && !p.ServesRegion(filter.City, filter.Area) {
			continue
		}
		if filter.MinRating > 0 && p.Rating() < filter.MinRating {
			continue
		}
		matched = append(matched, p)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating() > matched[j].Rating()
	})
	return matched, nil
}

type UpdateProviderInput struct {
	Name          *string
	Avatar        *string
	Category      *string
	Categories    []string
	Subcategories []string
	Regions       *entity.ProviderRegions
}

func (uc *ProviderUseCase) UpdateProvider(ctx context.Context, id string, input UpdateProviderInput) (*entity.Provider, error) {
	provider, err := uc.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		provider.Name = *input.Name
	}
	if input.Avatar != nil {
		provider.Avatar = *input.Avatar
	}
	if input.Category != nil {
		provider.Category = *input.Category
	}
	if input.Categories != nil {
		provider.Categories = input.Categories
		if provider.Category == "" && len(input.Categories) > 0 {
			provider.Category = input.Categories[0]
		}
	}
	if input.Subcategories != nil {
		provider.Subcategories = input.Subcategories
	}
	if input.Regions != nil {
		provider.Regions = *input.Regions
	}

	if err := uc.providerRepo.Update(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}

func (uc *ProviderUseCase) DeleteProvider(ctx context.Context, id string) error {
	if _, err := uc.providerRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.providerRepo.Delete(ctx, id)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
