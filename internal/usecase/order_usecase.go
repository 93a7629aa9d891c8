package usecase

import (
	"context"

	"bistro/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase exposes read access to committed submissions on both channels.
type OrderUsecase interface {
	// ListOrders returns all standard-channel orders, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// GetOrder retrieves a single order by its exposed identifier.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListCateringRequests returns all catering-channel requests, newest first.
	ListCateringRequests(ctx context.Context) ([]*entity.CateringRequest, error)
}
