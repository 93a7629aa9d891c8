// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"bistro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubmitOrderInput carries one standard-channel submission from the storefront.
type SubmitOrderInput struct {
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	ConsentToUpdates *bool

	DeliveryAddress string
	DeliveryDate    string // Raw storefront string, possibly with a parenthesized day name.

	Items          []entity.CartItem
	AdditionalInfo string
	PaymentToken   string

	Total        decimal.Decimal
	Tip          decimal.Decimal
	SalesTax     decimal.Decimal
	DiscountCode string
	Discount     decimal.Decimal
}

// SubmitCateringInput carries one catering-channel submission. The catering
// form does not collect a marketing-consent flag.
type SubmitCateringInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	EventAddress string
	EventDate    string

	EventDetails        string
	SpecialInstructions string
	Cart                []entity.CartItem

	Total decimal.Decimal
}

// CheckoutOutput identifies the committed submission and the customer it
// resolved to.
type CheckoutOutput struct {
	SubmissionUUID uuid.UUID
	CustomerUUID   uuid.UUID
	CustomerID     int64
}

// CheckoutUsecase is the order-intake pipeline: it resolves the submission's
// contact fields to a canonical customer, folds the submission into the
// customer's rolling aggregates, and commits the customer upsert together
// with the submission record as one transaction.
type CheckoutUsecase interface {
	// SubmitOrder records a standard-channel order.
	SubmitOrder(ctx context.Context, input *SubmitOrderInput) (*CheckoutOutput, error)

	// SubmitCatering records a catering-channel request.
	SubmitCatering(ctx context.Context, input *SubmitCateringInput) (*CheckoutOutput, error)
}
