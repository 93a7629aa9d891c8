package usecase

import (
	"context"
	"time"

	"bistro/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DiscountValidation is the outcome of checking a code against an order
// amount. A successful validation does not consume a use; redemption is a
// separate step taken when the order is actually placed.
type DiscountValidation struct {
	Valid          bool
	Code           string
	DiscountType   entity.DiscountType
	DiscountAmount decimal.Decimal
	Description    string
}

// CreateDiscountInput carries the admin-facing fields for registering a
// new code.
type CreateDiscountInput struct {
	Code               string
	DiscountType       entity.DiscountType
	DiscountValue      decimal.Decimal
	MinimumOrderAmount *decimal.Decimal
	MaxUses            *int
	Description        string
	ExpiresAt          time.Time
}

// UpdateDiscountInput carries a partial update for an existing code. Nil
// fields leave the stored value unchanged.
type UpdateDiscountInput struct {
	Code               string
	DiscountType       *entity.DiscountType
	DiscountValue      *decimal.Decimal
	MinimumOrderAmount *decimal.Decimal
	MaxUses            *int
	Description        *string
	Active             *bool
	ExpiresAt          *time.Time
}

// DiscountUsecase manages promotional codes and applies them to orders.
type DiscountUsecase interface {
	// Validate checks a code against an order amount. Each rejection reason
	// maps to its own application error so the storefront can show the
	// customer exactly why the code was refused.
	Validate(ctx context.Context, code string, orderAmount decimal.Decimal) (*DiscountValidation, error)

	// Redeem consumes one use of a code and returns the new use count.
	Redeem(ctx context.Context, code string) (int, error)

	// Get retrieves a single code regardless of its active flag.
	Get(ctx context.Context, code string) (*entity.DiscountCode, error)

	// ListActive returns all active codes.
	ListActive(ctx context.Context) ([]*entity.DiscountCode, error)

	// Create registers a new code.
	Create(ctx context.Context, input *CreateDiscountInput) (*entity.DiscountCode, error)

	// Update applies the provided fields to an existing code, leaving the
	// rest untouched.
	Update(ctx context.Context, input *UpdateDiscountInput) (*entity.DiscountCode, error)

	// Deactivate soft-deletes a code.
	Deactivate(ctx context.Context, code string) error
}
