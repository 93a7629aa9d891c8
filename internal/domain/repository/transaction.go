// Package repository defines the persistence interfaces the usecase layer
// depends on, keeping it free of any concrete database driver.
package repository

import (
	"context"

	"bistro/internal/errors"
)

// ErrStoreUnreachable marks failures where the database itself cannot be
// reached, as opposed to a statement failing against a healthy connection.
var ErrStoreUnreachable = errors.New("store unreachable")

// TransactionManager defines the interface for managing database transactions.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations obtained from the
	// factory use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so the customer upsert and the order insert of a single
// submission commit or roll back as one unit.
type RepositoryFactory interface {
	// CustomerRepo returns a CustomerRepository bound to the current transaction.
	CustomerRepo() CustomerRepository

	// OrderRepo returns an OrderRepository bound to the current transaction.
	OrderRepo() OrderRepository

	// CateringRepo returns a CateringRepository bound to the current transaction.
	CateringRepo() CateringRepository
}
