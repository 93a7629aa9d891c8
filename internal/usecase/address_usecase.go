package usecase

import (
	"context"

	"bistro/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordAddressVerificationInput carries the outcome of a storefront
// address check.
type RecordAddressVerificationInput struct {
	Address  string
	Verified bool
	Data     string
}

// AddressVerificationUsecase records and serves delivery-address checks.
type AddressVerificationUsecase interface {
	// ListVerifications returns all recorded checks, newest first.
	ListVerifications(ctx context.Context) ([]*entity.AddressVerification, error)

	// GetVerification retrieves a single record.
	GetVerification(ctx context.Context, id uuid.UUID) (*entity.AddressVerification, error)

	// RecordVerification persists a new check outcome.
	RecordVerification(ctx context.Context, input *RecordAddressVerificationInput) (*entity.AddressVerification, error)
}
