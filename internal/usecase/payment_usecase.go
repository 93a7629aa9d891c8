package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// ChargeInput carries one storefront payment capture.
type ChargeInput struct {
	Amount         decimal.Decimal
	SourceToken    string
	IdempotencyKey string
	Description    string
	ReceiptEmail   string
}

// ChargeOutput reports the provider's outcome.
type ChargeOutput struct {
	ChargeID string
	Status   string
}

// PaymentUsecase captures card payments through the configured provider.
type PaymentUsecase interface {
	// Charge captures a payment for the given tokenized payment method.
	Charge(ctx context.Context, input *ChargeInput) (*ChargeOutput, error)
}
