package usecase

import (
	"context"

	"bistro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateMenuItemInput carries the fields for adding a catalog entry.
type CreateMenuItemInput struct {
	ItemName string
	Category string
	Price    decimal.Decimal
	Quantity int
}

// MenuUsecase serves the menu catalog.
type MenuUsecase interface {
	// ListMenuItems returns the full catalog.
	ListMenuItems(ctx context.Context) ([]*entity.MenuItem, error)

	// GetMenuItem retrieves a single catalog entry.
	GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// CreateMenuItem adds a catalog entry.
	CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error)
}
