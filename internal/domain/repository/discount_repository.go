package repository

import (
	"context"

	"bistro/internal/domain/entity"
	"bistro/internal/errors"
)

// Discount lookup and redemption outcomes.
var (
	ErrDiscountCodeNotFound  = errors.New("discount code not found")
	ErrDiscountCodeExhausted = errors.New("discount code has reached maximum uses")
)

// DiscountCodeRepository persists promotional codes and their usage counters.
// Codes are keyed by their normalized (upper-case) string, never by foreign key.
type DiscountCodeRepository interface {
	// FindActiveByCode retrieves an active code by its normalized string.
	FindActiveByCode(ctx context.Context, code string) (*entity.DiscountCode, error)

	// FindByCode retrieves a code regardless of its active flag.
	FindByCode(ctx context.Context, code string) (*entity.DiscountCode, error)

	// ListActive returns all active codes, newest first.
	ListActive(ctx context.Context) ([]*entity.DiscountCode, error)

	// Create inserts a new code and backfills generated identifiers.
	Create(ctx context.Context, code *entity.DiscountCode) error

	// Update overwrites a code's rule payload, active flag and expiry.
	Update(ctx context.Context, code *entity.DiscountCode) error

	// Redeem increments the code's usage counter as a single conditional
	// update bounded by the configured maximum. It returns the new use
	// count, ErrDiscountCodeExhausted when the limit has been reached, or
	// ErrDiscountCodeNotFound when no active code matches.
	Redeem(ctx context.Context, code string) (int, error)

	// Deactivate soft-deletes a code by clearing its active flag.
	Deactivate(ctx context.Context, code string) error
}
