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

type customerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service instance.
func NewCustomerService(customerRepo repository.CustomerRepository) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: customerRepo,
	}
}

// ListCustomers returns all customers, newest first.
func (s *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list customers")
	}

	return customers, nil
}

// GetCustomer retrieves a single customer by its exposed identifier.
func (s *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByUUID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find customer")
	}

	return customer, nil
}

// CreateCustomer inserts a customer directly, outside the checkout pipeline.
func (s *customerService) CreateCustomer(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	if input.Email == "" && input.Phone == "" {
		return nil, domainerrors.ErrInvalidIdentity
	}

	customer := &entity.Customer{
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		ConsentToUpdates: input.ConsentToUpdates,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}
