// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order and backfills the generated identifiers.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return errors.Wrap(err, "failed to serialize order payload")
	}
	if orderM.UUID == uuid.Nil {
		orderM.UUID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("invalid customer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.UUID = orderM.UUID
	order.Status = orderM.Status
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByUUID retrieves an order by its externally exposed identifier.
func (repo *orderRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("uuid = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by UUID")
	}

	return toOrderDomain(&orderM)
}

// List retrieves all orders, newest first.
func (repo *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("created_dttm DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	var payload entity.OrderPayload
	if len(data.Data) > 0 {
		if err := json.Unmarshal(data.Data, &payload); err != nil {
			return nil, errors.Wrap(err, "failed to decode order payload")
		}
	}

	return &entity.Order{
		ID:              data.ID,
		UUID:            data.UUID,
		CustomerID:      data.CustomerID,
		CustomerName:    data.CustomerName,
		CustomerEmail:   data.CustomerEmail,
		CustomerPhone:   data.CustomerPhone,
		DeliveryAddress: data.DeliveryAddress,
		DeliveryDate:    data.DeliveryDate,
		Total:           data.OrderTotal,
		Tip:             data.Tip,
		Discount:        data.Discount,
		Status:          data.Status,
		Payload:         payload,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	payloadJSON, err := json.Marshal(data.Payload)
	if err != nil {
		return nil, err
	}

	return &model.OrderModel{
		ID:              data.ID,
		UUID:            data.UUID,
		CustomerID:      data.CustomerID,
		CustomerName:    data.CustomerName,
		CustomerEmail:   data.CustomerEmail,
		CustomerPhone:   data.CustomerPhone,
		DeliveryAddress: data.DeliveryAddress,
		DeliveryDate:    data.DeliveryDate,
		OrderTotal:      data.Total,
		Tip:             data.Tip,
		Discount:        data.Discount,
		Status:          data.Status,
		Data:            datatypes.JSON(payloadJSON),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}
