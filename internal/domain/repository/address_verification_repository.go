package repository

import (
	"context"

	"bistro/internal/domain/entity"
	"bistro/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressVerificationNotFound is returned when no record matches the identifier.
var ErrAddressVerificationNotFound = errors.New("address verification not found")

// AddressVerificationRepository persists address-check records.
type AddressVerificationRepository interface {
	List(ctx context.Context) ([]*entity.AddressVerification, error)
	FindByUUID(ctx context.Context, id uuid.UUID) (*entity.AddressVerification, error)
	Create(ctx context.Context, record *entity.AddressVerification) error
}
