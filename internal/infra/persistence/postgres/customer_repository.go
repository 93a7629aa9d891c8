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
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindByEmailAndPhone retrieves the customer matching the exact contact pair.
// The row is locked for the remainder of the enclosing transaction so two
// submissions resolving to the same customer serialize instead of clobbering
// each other's aggregate updates.
func (repo *customerRepository) FindByEmailAndPhone(ctx context.Context, email, phone string) (*entity.Customer, error) {
	return repo.findOneLocked(ctx, "email = ? AND phone = ?", email, phone)
}

// FindByEmail retrieves the customer matching the email alone.
func (repo *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return repo.findOneLocked(ctx, "email = ?", email)
}

// FindByPhone retrieves the customer matching the phone alone.
func (repo *customerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	return repo.findOneLocked(ctx, "phone = ?", phone)
}

func (repo *customerRepository) findOneLocked(ctx context.Context, query string, args ...any) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(query, args...).
		Order("id ASC").
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return toCustomerDomain(&customerM), nil
}

// FindByUUID retrieves a customer by its externally exposed identifier.
func (repo *customerRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("uuid = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by UUID")
	}

	return toCustomerDomain(&customerM), nil
}

// List retrieves all customers, newest first.
func (repo *customerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Order("created_dttm DESC").
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// Create persists a new customer and backfills the generated identifiers.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM, err := fromCustomerDomain(customer)
	if err != nil {
		return errors.Wrap(err, "failed to serialize customer attributes")
	}
	if customerM.UUID == uuid.Nil {
		customerM.UUID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("customer already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.UUID = customerM.UUID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// Update overwrites the customer's contact fields and attribute bag.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerM, err := fromCustomerDomain(customer)
	if err != nil {
		return errors.Wrap(err, "failed to serialize customer attributes")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"name":               customerM.Name,
			"email":              customerM.Email,
			"phone":              customerM.Phone,
			"consent_to_updates": customerM.ConsentToUpdates,
			"data":               customerM.Data,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
// A malformed attribute bag degrades to empty aggregates instead of failing
// the lookup.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	stats, err := entity.ParseCustomerStats(data.Data)
	if err != nil {
		stats = entity.CustomerStats{}
	}

	return &entity.Customer{
		ID:               data.ID,
		UUID:             data.UUID,
		Name:             data.Name,
		Email:            data.Email,
		Phone:            data.Phone,
		ConsentToUpdates: data.ConsentToUpdates,
		Stats:            stats,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) (*model.CustomerModel, error) {
	if data == nil {
		return nil, nil
	}

	statsJSON, err := data.Stats.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return &model.CustomerModel{
		ID:               data.ID,
		UUID:             data.UUID,
		Name:             data.Name,
		Email:            data.Email,
		Phone:            data.Phone,
		ConsentToUpdates: data.ConsentToUpdates,
		Data:             datatypes.JSON(statsJSON),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}, nil
}
