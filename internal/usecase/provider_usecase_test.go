package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osta/internal/domain/entity"
)

func seedProviders(t *testing.T, repo *fakeProviderRepo) {
	t.Helper()
	ctx := context.Background()

	for _, p := range []*entity.Provider{
		{
			Name:     "CityPlumber",
			Category: "plumbing",
			Regions:  entity.ProviderRegions{Cities: []string{"Amman"}},
			Ratings:  []float64{3, 3},
		},
		{
			Name:          "StarElectric",
			Categories:    []string{"electrical"},
			Subcategories: []string{"wiring"},
			Regions:       entity.ProviderRegions{Everywhere: true},
			Ratings:       []float64{5, 5},
		},
		{
			Name:     "AreaPlumber",
			Category: "plumbing",
			Regions:  entity.ProviderRegions{Areas: []string{"Abdoun"}},
			Ratings:  []float64{4},
		},
	} {
		require.NoError(t, repo.Create(ctx, p))
	}
}

func TestListProvidersFilters(t *testing.T) {
	repo := newFakeProviderRepo()
	seedProviders(t, repo)
	uc := NewProviderUseCase(repo)
	ctx := context.Background()

	all, err := uc.ListProviders(ctx, ProviderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "StarElectric", all[0].Name, "best rated first")

	plumbers, err := uc.ListProviders(ctx, ProviderFilter{Category: "plumbing"})
	require.NoError(t, err)
	assert.Len(t, plumbers, 2)

	inAmman, err := uc.ListProviders(ctx, ProviderFilter{City: "Amman"})
	require.NoError(t, err)
	require.Len(t, inAmman, 2, "everywhere providers match any city")

	inAbdoun, err := uc.ListProviders(ctx, ProviderFilter{Area: "Abdoun"})
	require.NoError(t, err)
	assert.Len(t, inAbdoun, 2)

	wiring, err := uc.ListProviders(ctx, ProviderFilter{Subcategory: "wiring"})
	require.NoError(t, err)
	require.Len(t, wiring, 1)
	assert.Equal(t, "StarElectric", wiring[0].Name)

	topRated, err := uc.ListProviders(ctx, ProviderFilter{MinRating: 4})
	require.NoError(t, err)
	assert.Len(t, topRated, 2)
}

func TestUpdateProviderPartial(t *testing.T) {
	repo := newFakeProviderRepo()
	uc := NewProviderUseCase(repo)
	ctx := context.Background()

	provider := &entity.Provider{Name: "Old", Category: "plumbing"}
	require.NoError(t, repo.Create(ctx, provider))

	name := "New"
	updated, err := uc.UpdateProvider(ctx, provider.ID, UpdateProviderInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "plumbing", updated.Category, "untouched fields survive")
}

func TestCatalogCategoriesWithProviders(t *testing.T) {
	providerRepo := newFakeProviderRepo()
	seedProviders(t, providerRepo)
	uc := NewCatalogUseCase(newFakeCategoryRepo(), nil, nil, providerRepo)
	ctx := context.Background()

	for _, name := range []string{"plumbing", "electrical", "painting"} {
		_, err := uc.CreateCategory(ctx, name)
		require.NoError(t, err)
	}

	served, err := uc.CategoriesWithProviders(ctx)
	require.NoError(t, err)
	require.Len(t, served, 2, "painting has no providers")

	names := []string{served[0].Name, served[1].Name}
	assert.ElementsMatch(t, []string{"plumbing", "electrical"}, names)

	plumbers, err := uc.ProvidersByCategory(ctx, "plumbing")
	require.NoError(t, err)
	require.Len(t, plumbers, 2)
	assert.Equal(t, "AreaPlumber", plumbers[0].Name, "best rated first")
}

func TestCatalogTopCategories(t *testing.T) {
	providerRepo := newFakeProviderRepo()
	seedProviders(t, providerRepo)
	uc := NewCatalogUseCase(newFakeCategoryRepo(), nil, nil, providerRepo)
	ctx := context.Background()

	for _, name := range []string{"painting", "electrical", "plumbing"} {
		_, err := uc.CreateCategory(ctx, name)
		require.NoError(t, err)
	}

	top, err := uc.TopCategories(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "plumbing", top[0].Name, "served by the most providers")
	assert.Equal(t, "electrical", top[1].Name)

	all, err := uc.TopCategories(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3, "limit beyond the catalog returns everything")
	assert.Equal(t, "painting", all[2].Name, "unserved categories rank last")
}
