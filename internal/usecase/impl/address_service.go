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

type addressService struct {
	addressRepo repository.AddressVerificationRepository
}

// NewAddressService creates a new address verification service instance.
func NewAddressService(addressRepo repository.AddressVerificationRepository) usecase.AddressVerificationUsecase {
	return &addressService{
		addressRepo: addressRepo,
	}
}

// ListVerifications returns all recorded checks, newest first.
func (s *addressService) ListVerifications(ctx context.Context) ([]*entity.AddressVerification, error) {
	records, err := s.addressRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list address verifications")
	}

	return records, nil
}

// GetVerification retrieves a single record.
func (s *addressService) GetVerification(ctx context.Context, id uuid.UUID) (*entity.AddressVerification, error) {
	record, err := s.addressRepo.FindByUUID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressVerificationNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address verification")
	}

	return record, nil
}

// RecordVerification persists a new check outcome.
func (s *addressService) RecordVerification(ctx context.Context, input *usecase.RecordAddressVerificationInput) (*entity.AddressVerification, error) {
	record := &entity.AddressVerification{
		Address:  input.Address,
		Verified: input.Verified,
		Data:     input.Data,
	}

	if err := s.addressRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}
