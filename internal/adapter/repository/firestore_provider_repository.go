package repository

import (
	"context"
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

type firestoreProviderRepository struct {
	client *firestore.Client
}

func NewFirestoreProviderRepository(client *firestore.Client) repository.ProviderRepository {
	return &firestoreProviderRepository{
		client: client,
	}
}

func (r *firestoreProviderRepository) Create(ctx context.Context, provider *entity.Provider) error {
	if provider.ID == "" {
		provider.ID = uuid.New().String()
	}

	now := time.Now()
	provider.CreatedAt = now
	provider.UpdatedAt = now
	if provider.Ratings == nil {
		provider.Ratings = []float64{}
	}
	if provider.Reviews == nil {
		provider.Reviews = []string{}
	}

	_, err := r.client.Collection("providers").Doc(provider.ID).Set(ctx, provider)
	if err != nil {
		return errors.Internal("Failed to create provider", err)
	}
	return nil
}

func (r *firestoreProviderRepository) GetByID(ctx context.Context, id string) (*entity.Provider, error) {
	snap, err := r.client.Collection("providers").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Provider", err)
		}
		return nil, errors.Internal("Failed to get provider", err)
	}

	var provider entity.Provider
	if err := snap.DataTo(&provider); err != nil {
		return nil, errors.Internal("Failed to parse provider data", err)
	}
	return &provider, nil
}

func (r *firestoreProviderRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Provider, error) {
	result := make(map[string]*entity.Provider, len(ids))
	refs := make([]*firestore.DocumentRef, 0, len(ids))

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, r.client.Collection("providers").Doc(id))
	}
	if len(refs) == 0 {
		return result, nil
	}

	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Internal("Failed to batch load providers", err)
	}

	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		var provider entity.Provider
		if err := snap.DataTo(&provider); err != nil {
			return nil, errors.Internal("Failed to parse provider data", err)
		}
		result[provider.ID] = &provider
	}
	return result, nil
}

func (r *firestoreProviderRepository) GetByEmail(ctx context.Context, email string) (*entity.Provider, error) {
	iter := r.client.Collection("providers").Where("email", "==", email).Limit(1).Documents(ctx)
	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Provider", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get provider by email", err)
	}

	var provider entity.Provider
	if err := snap.DataTo(&provider); err != nil {
		return nil, errors.Internal("Failed to parse provider data", err)
	}
	return &provider, nil
}

func (r *firestoreProviderRepository) List(ctx context.Context) ([]*entity.Provider, error) {
	iter := r.client.Collection("providers").OrderBy("createdAt", firestore.Desc).Documents(ctx)

	var providers []*entity.Provider
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list providers", err)
		}

		var provider entity.Provider
		if err := snap.DataTo(&provider); err != nil {
			return nil, errors.Internal("Failed to parse provider data", err)
		}
		providers = append(providers, &provider)
	}
	return providers, nil
}

func (r *firestoreProviderRepository) Update(ctx context.Context, provider *entity.Provider) error {
	provider.UpdatedAt = time.Now()
	_, err := r.client.Collection("providers").Doc(provider.ID).Set(ctx, provider)
	if err != nil {
		return errors.Internal("Failed to update provider", err)
	}
	return nil
}

func (r *firestoreProviderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("providers").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete provider", err)
	}
	return nil
}

// AppendRating rewrites the lists in a transaction; ArrayUnion would collapse
// equal rating values.
func (r *firestoreProviderRepository) AppendRating(ctx context.Context, id string, rating float64, review string) error {
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc := r.client.Collection("providers").Doc(id)
		snap, err := tx.Get(doc)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Provider", err)
			}
			return err
		}

		var provider entity.Provider
		if err := snap.DataTo(&provider); err != nil {
			return err
		}

		provider.Ratings = append(provider.Ratings, rating)
		if review != "" {
			provider.Reviews = append(provider.Reviews, review)
		}
		provider.UpdatedAt = time.Now()
		return tx.Set(doc, &provider)
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return appErr
		}
		return errors.Internal("Failed to append provider rating", err)
	}
	return nil
}
