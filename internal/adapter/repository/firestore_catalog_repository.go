package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"osta/internal/domain/entity"
	"osta/internal/domain/repository"
	"osta/pkg/errors"
)

type firestoreCategoryRepository struct {
	client *firestore.Client
}

func NewFirestoreCategoryRepository(client *firestore.Client) repository.CategoryRepository {
	return &firestoreCategoryRepository{client: client}
}

func (r *firestoreCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := r.client.Collection("categories").Doc(category.ID).Set(ctx, category)
	if err != nil {
		return errors.Internal("Failed to create category", err)
	}
	return nil
}

func (r *firestoreCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	snap, err := r.client.Collection("categories").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Category", err)
		}
		return nil, errors.Internal("Failed to get category", err)
	}

	var category entity.Category
	if err := snap.DataTo(&category); err != nil {
		return nil, errors.Internal("Failed to parse category data", err)
	}
	return &category, nil
}

func (r *firestoreCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	category.UpdatedAt = time.Now()
	_, err := r.client.Collection("categories").Doc(category.ID).Set(ctx, category)
	if err != nil {
		return errors.Internal("Failed to update category", err)
	}
	return nil
}

func (r *firestoreCategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("categories").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete category", err)
	}
	return nil
}

// List reads the ordered collection and filters the name substring in memory;
// Firestore has no contains operator and the catalog stays small.
func (r *firestoreCategoryRepository) List(ctx context.Context, q string, limit, offset int) ([]*entity.Category, int64, error) {
	iter := r.client.Collection("categories").OrderBy("name", firestore.Asc).Documents(ctx)

	var matched []*entity.Category
	needle := strings.ToLower(q)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list categories", err)
		}

		var category entity.Category
		if err := snap.DataTo(&category); err != nil {
			return nil, 0, errors.Internal("Failed to parse category data", err)
		}
		if needle != "" && !strings.Contains(strings.ToLower(category.Name), needle) {
			continue
		}
		matched = append(matched, &category)
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*entity.Category{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

type firestoreSubcategoryRepository struct {
	client *firestore.Client
}

func NewFirestoreSubcategoryRepository(client *firestore.Client) repository.SubcategoryRepository {
	return &firestoreSubcategoryRepository{client: client}
}

func (r *firestoreSubcategoryRepository) Create(ctx context.Context, subcategory *entity.Subcategory) error {
	if subcategory.ID == "" {
		subcategory.ID = uuid.New().String()
	}
	now := time.Now()
	subcategory.CreatedAt = now
	subcategory.UpdatedAt = now

	_, err := r.client.Collection("subcategories").Doc(subcategory.ID).Set(ctx, subcategory)
	if err != nil {
		return errors.Internal("Failed to create subcategory", err)
	}
	return nil
}

func (r *firestoreSubcategoryRepository) GetByName(ctx context.Context, name string) (*entity.Subcategory, error) {
	iter := r.client.Collection("subcategories").Where("name", "==", name).Limit(1).Documents(ctx)
	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Subcategory", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get subcategory", err)
	}

	var subcategory entity.Subcategory
	if err := snap.DataTo(&subcategory); err != nil {
		return nil, errors.Internal("Failed to parse subcategory data", err)
	}
	return &subcategory, nil
}

func (r *firestoreSubcategoryRepository) List(ctx context.Context, category string) ([]*entity.Subcategory, error) {
	query := r.client.Collection("subcategories").Query
	if category != "" {
		query = query.Where("category", "==", category)
	} else {
		query = query.OrderBy("name", firestore.Asc)
	}

	iter := query.Documents(ctx)
	var subcategories []*entity.Subcategory
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list subcategories", err)
		}

		var subcategory entity.Subcategory
		if err := snap.DataTo(&subcategory); err != nil {
			return nil, errors.Internal("Failed to parse subcategory data", err)
		}
		subcategories = append(subcategories, &subcategory)
	}
	return subcategories, nil
}

func (r *firestoreSubcategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("subcategories").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete subcategory", err)
	}
	return nil
}

type firestoreRegionRepository struct {
	client *firestore.Client
}

func NewFirestoreRegionRepository(client *firestore.Client) repository.RegionRepository {
	return &firestoreRegionRepository{client: client}
}

func (r *firestoreRegionRepository) Create(ctx context.Context, region *entity.Region) error {
	if region.ID == "" {
		region.ID = uuid.New().String()
	}
	if region.Areas == nil {
		region.Areas = []string{}
	}

	_, err := r.client.Collection("regions").Doc(region.ID).Set(ctx, region)
	if err != nil {
		return errors.Internal("Failed to create region", err)
	}
	return nil
}

func (r *firestoreRegionRepository) GetByCity(ctx context.Context, city string) (*entity.Region, error) {
	iter := r.client.Collection("regions").Where("city", "==", city).Limit(1).Documents(ctx)
	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Region", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get region", err)
	}

	var region entity.Region
	if err := snap.DataTo(&region); err != nil {
		return nil, errors.Internal("Failed to parse region data", err)
	}
	return &region, nil
}

func (r *firestoreRegionRepository) List(ctx context.Context) ([]*entity.Region, error) {
	iter := r.client.Collection("regions").OrderBy("city", firestore.Asc).Documents(ctx)

	var regions []*entity.Region
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list regions", err)
		}

		var region entity.Region
		if err := snap.DataTo(&region); err != nil {
			return nil, errors.Internal("Failed to parse region data", err)
		}
		regions = append(regions, &region)
	}
	return regions, nil
}

func (r *firestoreRegionRepository) AddArea(ctx context.Context, city, area string) (*entity.Region, error) {
	region, err := r.GetByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	var result *entity.Region
	err = r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc := r.client.Collection("regions").Doc(region.ID)
		snap, err := tx.Get(doc)
		if err != nil {
			return err
		}

		var current entity.Region
		if err := snap.DataTo(&current); err != nil {
			return err
		}

		for _, a := range current.Areas {
			if a == area {
				result = &current
				return nil
			}
		}

		current.Areas = append(current.Areas, area)
		result = &current
		return tx.Set(doc, &current)
	})
	if err != nil {
		return nil, errors.Internal("Failed to add area", err)
	}
	return result, nil
}
