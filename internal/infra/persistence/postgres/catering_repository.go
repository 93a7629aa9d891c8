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

// cateringRepository implements the repository.CateringRepository interface.
type cateringRepository struct {
	db *gorm.DB
}

// NewCateringRepository is the constructor for cateringRepository.
func NewCateringRepository(db *gorm.DB) repository.CateringRepository {
	return &cateringRepository{
		db: db,
	}
}

// Create persists a new catering request and backfills the generated identifiers.
func (repo *cateringRepository) Create(ctx context.Context, request *entity.CateringRequest) error {
	requestM, err := fromCateringDomain(request)
	if err != nil {
		return errors.Wrap(err, "failed to serialize catering payload")
	}
	if requestM.UUID == uuid.Nil {
		requestM.UUID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("invalid customer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required catering information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create catering request")
	}

	request.ID = requestM.ID
	request.UUID = requestM.UUID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// List retrieves all catering requests, newest first.
func (repo *cateringRepository) List(ctx context.Context) ([]*entity.CateringRequest, error) {
	var requestModels []*model.CateringRequestModel

	if err := repo.db.WithContext(ctx).
		Order("created_dttm DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list catering requests")
	}

	requests := make([]*entity.CateringRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		request, err := toCateringDomain(requestM)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// --- Mapper Functions ---

// toCateringDomain converts a GORM CateringRequestModel to a domain CateringRequest entity.
func toCateringDomain(data *model.CateringRequestModel) (*entity.CateringRequest, error) {
	if data == nil {
		return nil, nil
	}

	var payload entity.CateringPayload
	if len(data.Data) > 0 {
		if err := json.Unmarshal(data.Data, &payload); err != nil {
			return nil, errors.Wrap(err, "failed to decode catering payload")
		}
	}

	return &entity.CateringRequest{
		ID:            data.ID,
		UUID:          data.UUID,
		CustomerID:    data.CustomerID,
		CustomerName:  data.CustomerName,
		CustomerEmail: data.CustomerEmail,
		CustomerPhone: data.CustomerPhone,
		EventAddress:  data.DeliveryAddress,
		EventDate:     data.DeliveryDate,
		Total:         data.OrderTotal,
		Payload:       payload,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}

// fromCateringDomain converts a domain CateringRequest entity to a GORM CateringRequestModel.
func fromCateringDomain(data *entity.CateringRequest) (*model.CateringRequestModel, error) {
	if data == nil {
		return nil, nil
	}

	payloadJSON, err := json.Marshal(data.Payload)
	if err != nil {
		return nil, err
	}

	return &model.CateringRequestModel{
		ID:              data.ID,
		UUID:            data.UUID,
		CustomerID:      data.CustomerID,
		CustomerName:    data.CustomerName,
		CustomerEmail:   data.CustomerEmail,
		CustomerPhone:   data.CustomerPhone,
		DeliveryAddress: data.EventAddress,
		DeliveryDate:    data.EventDate,
		OrderTotal:      data.Total,
		Data:            datatypes.JSON(payloadJSON),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}
