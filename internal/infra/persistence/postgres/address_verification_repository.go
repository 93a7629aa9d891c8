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

// addressVerificationRepository implements the repository.AddressVerificationRepository interface.
type addressVerificationRepository struct {
	db *gorm.DB
}

// NewAddressVerificationRepository is the constructor for addressVerificationRepository.
func NewAddressVerificationRepository(db *gorm.DB) repository.AddressVerificationRepository {
	return &addressVerificationRepository{
		db: db,
	}
}

// List retrieves all address verification records, newest first.
func (repo *addressVerificationRepository) List(ctx context.Context) ([]*entity.AddressVerification, error) {
	var recordModels []*model.AddressVerificationModel

	if err := repo.db.WithContext(ctx).
		Order("create_time DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list address verifications")
	}

	records := make([]*entity.AddressVerification, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toAddressVerificationDomain(recordM))
	}

	return records, nil
}

// FindByUUID retrieves a record by its externally exposed identifier.
func (repo *addressVerificationRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*entity.AddressVerification, error) {
	var recordM model.AddressVerificationModel

	if err := repo.db.WithContext(ctx).
		Where("uuid = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find address verification by UUID")
	}

	return toAddressVerificationDomain(&recordM), nil
}

// Create persists a new address verification record.
func (repo *addressVerificationRepository) Create(ctx context.Context, record *entity.AddressVerification) error {
	recordM := fromAddressVerificationDomain(record)
	if recordM.UUID == uuid.Nil {
		recordM.UUID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address verification")
	}

	record.ID = recordM.ID
	record.UUID = recordM.UUID
	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toAddressVerificationDomain(data *model.AddressVerificationModel) *entity.AddressVerification {
	if data == nil {
		return nil
	}

	return &entity.AddressVerification{
		ID:        data.ID,
		UUID:      data.UUID,
		Address:   data.Address,
		Verified:  data.AddressVerified,
		Data:      data.Data,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAddressVerificationDomain(data *entity.AddressVerification) *model.AddressVerificationModel {
	if data == nil {
		return nil
	}

	return &model.AddressVerificationModel{
		ID:              data.ID,
		UUID:            data.UUID,
		Address:         data.Address,
		AddressVerified: data.Verified,
		Data:            data.Data,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
