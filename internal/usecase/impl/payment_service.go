package impl

import (
	"context"

	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/service"
	"bistro/internal/usecase"

	"github.com/shopspring/decimal"
)

type paymentService struct {
	processor service.PaymentProcessor
}

// NewPaymentService creates a new payment service instance.
func NewPaymentService(processor service.PaymentProcessor) usecase.PaymentUsecase {
	return &paymentService{
		processor: processor,
	}
}

// Charge captures a payment for the given tokenized payment method.
func (s *paymentService) Charge(ctx context.Context, input *usecase.ChargeInput) (*usecase.ChargeOutput, error) {
	if input.SourceToken == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment token is required")
	}
	if !input.Amount.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}

	result, err := s.processor.Charge(ctx, &service.ChargeRequest{
		AmountMinorUnits: toMinorUnits(input.Amount),
		SourceToken:      input.SourceToken,
		IdempotencyKey:   input.IdempotencyKey,
		Description:      input.Description,
		ReceiptEmail:     input.ReceiptEmail,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.ChargeOutput{
		ChargeID: result.ProviderChargeID,
		Status:   result.Status,
	}, nil
}

// toMinorUnits converts a decimal major-unit amount to integer minor units,
// rounding to the nearest cent.
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
