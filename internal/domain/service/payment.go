package service

import "context"

// ChargeRequest describes a single payment capture: the amount in minor
// currency units, a one-time token from the storefront's payment form, and
// an idempotency key so a retried submission never charges twice.
type ChargeRequest struct {
	AmountMinorUnits int64
	Currency         string
	SourceToken      string
	IdempotencyKey   string
	Description      string
	ReceiptEmail     string
}

// ChargeResult reports the provider's outcome for a capture.
type ChargeResult struct {
	ProviderChargeID string
	Status           string
}

// PaymentProcessor captures payments with an external provider.
type PaymentProcessor interface {
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}
