package repository

import (
	"context"

	"bistro/internal/domain/entity"
	"bistro/internal/errors"

	"github.com/google/uuid"
)

// ErrMenuItemNotFound is returned when no menu item matches the identifier.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuItemRepository persists the menu catalog.
type MenuItemRepository interface {
	List(ctx context.Context) ([]*entity.MenuItem, error)
	FindByUUID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	Create(ctx context.Context, item *entity.MenuItem) error
}
