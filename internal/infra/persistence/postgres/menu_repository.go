// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// menuRepository implements the repository.MenuItemRepository interface.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuRepository{
		db: db,
	}
}

// List retrieves the full menu catalog ordered by category and name.
func (repo *menuRepository) List(ctx context.Context) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Order("category ASC, item_name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items, nil
}

// FindByUUID retrieves a menu item by its externally exposed identifier.
func (repo *menuRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Where("uuid = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by UUID")
	}

	return toMenuItemDomain(&itemM), nil
}

// Create persists a new menu item and backfills the generated identifiers.
func (repo *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)
	if itemM.UUID == uuid.Nil {
		itemM.UUID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required menu item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	item.ID = itemM.ID
	item.UUID = itemM.UUID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:        data.ID,
		UUID:      data.UUID,
		ItemName:  data.ItemName,
		Category:  data.Category,
		Price:     data.Price,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:        data.ID,
		UUID:      data.UUID,
		ItemName:  data.ItemName,
		Category:  data.Category,
		Price:     data.Price,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
