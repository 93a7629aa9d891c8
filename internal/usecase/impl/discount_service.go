package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type discountService struct {
	discountRepo repository.DiscountCodeRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewDiscountService creates a new discount service instance.
func NewDiscountService(discountRepo repository.DiscountCodeRepository, logger *slog.Logger) usecase.DiscountUsecase {
	return &discountService{
		discountRepo: discountRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Validate checks a code against an order amount. The checks run in a fixed
// order so a code that is both expired and exhausted always reports the same
// rejection: existence, then expiry, then minimum order amount, then usage
// limit.
func (s *discountService) Validate(ctx context.Context, code string, orderAmount decimal.Decimal) (*usecase.DiscountValidation, error) {
	normalized := entity.NormalizeDiscountCode(code)
	if normalized == "" {
		return nil, domainerrors.ErrCodeNotFound
	}

	discount, err := s.discountRepo.FindActiveByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountCodeNotFound) {
			return nil, domainerrors.ErrCodeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up discount code")
	}

	// Expiry must be strictly in the future; a code expiring right now is
	// already expired.
	if !discount.ExpiresAt.IsZero() && !discount.ExpiresAt.After(s.now()) {
		return nil, domainerrors.ErrCodeExpired
	}

	if minimum := discount.Rule.MinimumOrderAmount; minimum != nil && orderAmount.LessThan(*minimum) {
		return nil, domainerrors.ErrMinimumNotMet.WithDetails(
			fmt.Sprintf("minimum order amount is %s", minimum.StringFixed(2)),
		)
	}

	if discount.Rule.Exhausted() {
		return nil, domainerrors.ErrMaxUsesReached
	}

	return &usecase.DiscountValidation{
		Valid:          true,
		Code:           discount.Code,
		DiscountType:   discount.Rule.DiscountType,
		DiscountAmount: discount.Rule.Amount(orderAmount),
		Description:    discount.Rule.Description,
	}, nil
}

// Redeem consumes one use of a code. The underlying update is conditional on
// the usage limit, so concurrent redemptions of the last remaining use
// resolve to exactly one winner.
func (s *discountService) Redeem(ctx context.Context, code string) (int, error) {
	newUses, err := s.discountRepo.Redeem(ctx, code)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDiscountCodeNotFound):
			return 0, domainerrors.ErrCodeNotFound
		case errors.Is(err, repository.ErrDiscountCodeExhausted):
			return 0, domainerrors.ErrMaxUsesReached
		default:
			return 0, err
		}
	}

	s.logger.InfoContext(ctx, "discount code redeemed",
		slog.String("code", entity.NormalizeDiscountCode(code)),
		slog.Int("uses", newUses),
	)

	return newUses, nil
}

// Get retrieves a single code regardless of its active flag.
func (s *discountService) Get(ctx context.Context, code string) (*entity.DiscountCode, error) {
	discount, err := s.discountRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountCodeNotFound) {
			return nil, domainerrors.ErrCodeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up discount code")
	}

	return discount, nil
}

// ListActive returns all active codes.
func (s *discountService) ListActive(ctx context.Context) ([]*entity.DiscountCode, error) {
	codes, err := s.discountRepo.ListActive(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list discount codes")
	}

	return codes, nil
}

// Create registers a new code. A code created with an expiry in the past
// would never validate, so that is rejected up front.
func (s *discountService) Create(ctx context.Context, input *usecase.CreateDiscountInput) (*entity.DiscountCode, error) {
	if !input.ExpiresAt.IsZero() && !input.ExpiresAt.After(s.now()) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("expiry must be in the future")
	}

	discount := &entity.DiscountCode{
		Code:      entity.NormalizeDiscountCode(input.Code),
		Active:    true,
		ExpiresAt: input.ExpiresAt,
		Rule: entity.DiscountRule{
			DiscountType:       input.DiscountType,
			DiscountValue:      input.DiscountValue,
			MinimumOrderAmount: input.MinimumOrderAmount,
			MaxUses:            input.MaxUses,
			Description:        input.Description,
		},
	}

	if err := s.discountRepo.Create(ctx, discount); err != nil {
		return nil, err
	}

	return discount, nil
}

// Update applies the provided fields to an existing code. Nil inputs leave
// the stored values in place, so a description-only change never clears the
// expiry or the usage limits, and the current use count always survives.
func (s *discountService) Update(ctx context.Context, input *usecase.UpdateDiscountInput) (*entity.DiscountCode, error) {
	discount, err := s.discountRepo.FindByCode(ctx, input.Code)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountCodeNotFound) {
			return nil, domainerrors.ErrCodeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up discount code")
	}

	if input.DiscountType != nil {
		discount.Rule.DiscountType = *input.DiscountType
	}
	if input.DiscountValue != nil {
		discount.Rule.DiscountValue = *input.DiscountValue
	}
	if input.MinimumOrderAmount != nil {
		discount.Rule.MinimumOrderAmount = input.MinimumOrderAmount
	}
	if input.MaxUses != nil {
		discount.Rule.MaxUses = input.MaxUses
	}
	if input.Description != nil {
		discount.Rule.Description = *input.Description
	}
	if input.Active != nil {
		discount.Active = *input.Active
	}
	if input.ExpiresAt != nil {
		discount.ExpiresAt = *input.ExpiresAt
	}

	if err := s.discountRepo.Update(ctx, discount); err != nil {
		return nil, err
	}

	return discount, nil
}

// Deactivate soft-deletes a code.
func (s *discountService) Deactivate(ctx context.Context, code string) error {
	if err := s.discountRepo.Deactivate(ctx, code); err != nil {
		if errors.Is(err, repository.ErrDiscountCodeNotFound) {
			return domainerrors.ErrCodeNotFound
		}

		return err
	}

	return nil
}
