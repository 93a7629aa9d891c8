package repository

import (
	"context"

	"bistro/internal/domain/entity"
	"bistro/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the given identifier.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists standard-channel orders.
type OrderRepository interface {
	// Create inserts a new order row referencing its customer's internal id
	// and backfills generated identifiers onto the entity.
	Create(ctx context.Context, order *entity.Order) error

	// FindByUUID retrieves an order by its externally exposed identifier.
	FindByUUID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns all orders, newest first.
	List(ctx context.Context) ([]*entity.Order, error)
}
