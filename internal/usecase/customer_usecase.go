package usecase

import (
	"context"

	"bistro/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCustomerInput carries the fields for an admin-created customer. The
// usual path for creating customers is the checkout pipeline; this exists for
// back-office corrections.
type CreateCustomerInput struct {
	Name             string
	Email            string
	Phone            string
	ConsentToUpdates bool
}

// CustomerUsecase exposes access to canonical customer records.
type CustomerUsecase interface {
	// ListCustomers returns all customers, newest first.
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)

	// GetCustomer retrieves a single customer by its exposed identifier.
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// CreateCustomer inserts a customer directly, outside the checkout
	// pipeline.
	CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)
}
