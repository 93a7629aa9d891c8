package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType selects how a code's value is applied to an order amount.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// NormalizeDiscountCode upper-cases a code for lookup. Codes are unique by
// convention, not by schema constraint.
func NormalizeDiscountCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DiscountCode is a promotional rule plus its mutable usage counter.
// Deletion is a soft flip of Active; the rule payload lives in the code's
// data column.
type DiscountCode struct {
	ID        int64
	UUID      uuid.UUID
	Code      string
	Active    bool
	Rule      DiscountRule
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DiscountRule is the pricing payload of a code.
type DiscountRule struct {
	DiscountType       DiscountType     `json:"DiscountType"`
	DiscountValue      decimal.Decimal  `json:"DiscountValue"`
	MinimumOrderAmount *decimal.Decimal `json:"MinimumOrderAmount,omitempty"`
	MaxUses            *int             `json:"MaxUses,omitempty"`
	CurrentUses        int              `json:"CurrentUses"`
	Description        string           `json:"Description,omitempty"`
}

// Amount computes the discount for the given order amount. Percentage
// discounts round half-to-even to 2 decimal places; fixed discounts apply
// verbatim and are deliberately not clamped to the order total.
func (r DiscountRule) Amount(orderAmount decimal.Decimal) decimal.Decimal {
	switch DiscountType(strings.ToLower(string(r.DiscountType))) {
	case DiscountTypePercentage:
		return orderAmount.Mul(r.DiscountValue).Div(decimal.NewFromInt(100)).RoundBank(2)
	case DiscountTypeFixed:
		return r.DiscountValue
	default:
		return decimal.Zero
	}
}

// Exhausted reports whether the code's usage limit, if any, has been reached.
func (r DiscountRule) Exhausted() bool {
	return r.MaxUses != nil && r.CurrentUses >= *r.MaxUses
}
