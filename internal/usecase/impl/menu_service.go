package impl

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type menuService struct {
	menuRepo repository.MenuItemRepository
}

// NewMenuService creates a new menu service instance.
func NewMenuService(menuRepo repository.MenuItemRepository) usecase.MenuUsecase {
	return &menuService{
		menuRepo: menuRepo,
	}
}

// ListMenuItems returns the full catalog.
func (s *menuService) ListMenuItems(ctx context.Context) ([]*entity.MenuItem, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list menu items")
	}

	return items, nil
}

// GetMenuItem retrieves a single catalog entry.
func (s *menuService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.FindByUUID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find menu item")
	}

	return item, nil
}

// CreateMenuItem adds a catalog entry.
func (s *menuService) CreateMenuItem(ctx context.Context, input *usecase.CreateMenuItemInput) (*entity.MenuItem, error) {
	item := &entity.MenuItem{
		ItemName: input.ItemName,
		Category: input.Category,
		Price:    input.Price,
		Quantity: input.Quantity,
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}
