package repository

import (
	"context"

	"bistro/internal/domain/entity"
	"bistro/internal/errors"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when no customer matches the given lookup.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository persists canonical customer identities.
//
// The three finders back the intake resolver's strict fallback order. When
// called inside an intake transaction the implementations lock the matched
// row for the duration of the transaction, serializing concurrent
// read-modify-write cycles against the same identity.
type CustomerRepository interface {
	// FindByEmailAndPhone matches on the exact (email, phone) pair.
	FindByEmailAndPhone(ctx context.Context, email, phone string) (*entity.Customer, error)

	// FindByEmail matches on email alone.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// FindByPhone matches on phone alone.
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// FindByUUID retrieves a customer by its externally exposed identifier.
	FindByUUID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// List returns all customers, newest first.
	List(ctx context.Context) ([]*entity.Customer, error)

	// Create inserts a new customer and backfills the store-assigned
	// internal id, UUID and timestamps onto the entity.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update overwrites an existing customer's contact fields and attribute bag.
	Update(ctx context.Context, customer *entity.Customer) error
}
