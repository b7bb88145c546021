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

type firestoreRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreRequestRepository(client *firestore.Client) repository.RequestRepository {
	return &firestoreRequestRepository{
		client: client,
	}
}

func (r *firestoreRequestRepository) Create(ctx context.Context, request *entity.Request) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}

	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	_, err := r.client.Collection("requests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to create request", err)
	}
	return nil
}

func (r *firestoreRequestRepository) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	snap, err := r.client.Collection("requests").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Request", err)
		}
		return nil, errors.Internal("Failed to get request", err)
	}

	var request entity.Request
	if err := snap.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse request data", err)
	}
	return &request, nil
}

func (r *firestoreRequestRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Request, error) {
	return r.list(ctx, "userId", userID)
}

func (r *firestoreRequestRepository) ListByProviderID(ctx context.Context, providerID string) ([]*entity.Request, error) {
	return r.list(ctx, "providerId", providerID)
}

func (r *firestoreRequestRepository) list(ctx context.Context, field, value string) ([]*entity.Request, error) {
	iter := r.client.Collection("requests").
		Where(field, "==", value).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var requests []*entity.Request
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list requests", err)
		}

		var request entity.Request
		if err := snap.DataTo(&request); err != nil {
			return nil, errors.Internal("Failed to parse request data", err)
		}
		requests = append(requests, &request)
	}
	return requests, nil
}

func (r *firestoreRequestRepository) UpdateStatus(ctx context.Context, id, newStatus string) (*entity.Request, error) {
	var result *entity.Request

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc := r.client.Collection("requests").Doc(id)
		snap, err := tx.Get(doc)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Request", err)
			}
			return err
		}

		var request entity.Request
		if err := snap.DataTo(&request); err != nil {
			return err
		}

		request.Status = newStatus
		request.UpdatedAt = time.Now()
		result = &request
		return tx.Set(doc, &request)
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.Internal("Failed to update request status", err)
	}
	return result, nil
}
