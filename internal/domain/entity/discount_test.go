package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDiscountCode(t *testing.T) {
	assert.Equal(t, "SAVE10", NormalizeDiscountCode(" save10 "))
	assert.Equal(t, "SAVE10", NormalizeDiscountCode("Save10"))
	assert.Equal(t, "", NormalizeDiscountCode("  "))
}

func TestDiscountRule_Amount_Percentage(t *testing.T) {
	rule := DiscountRule{
		DiscountType:  DiscountTypePercentage,
		DiscountValue: decimal.RequireFromString("10"),
	}

	amount := rule.Amount(decimal.RequireFromString("50.00"))
	assert.True(t, amount.Equal(decimal.RequireFromString("5.00")), "got %s", amount)

	// Rounds to two decimal places.
	amount = rule.Amount(decimal.RequireFromString("33.33"))
	assert.True(t, amount.Equal(decimal.RequireFromString("3.33")), "got %s", amount)

	// Midpoints round half to even: 10% of 21.25 is 2.125, which lands on
	// 2.12 rather than 2.13.
	amount = rule.Amount(decimal.RequireFromString("21.25"))
	assert.True(t, amount.Equal(decimal.RequireFromString("2.12")), "got %s", amount)
}

func TestDiscountRule_Amount_PercentageCaseInsensitiveType(t *testing.T) {
	rule := DiscountRule{
		DiscountType:  "Percentage",
		DiscountValue: decimal.RequireFromString("20"),
	}

	amount := rule.Amount(decimal.RequireFromString("10.00"))
	assert.True(t, amount.Equal(decimal.RequireFromString("2.00")), "got %s", amount)
}

func TestDiscountRule_Amount_FixedIsVerbatim(t *testing.T) {
	rule := DiscountRule{
		DiscountType:  DiscountTypeFixed,
		DiscountValue: decimal.RequireFromString("15.00"),
	}

	// Fixed discounts are not clamped to the order amount.
	amount := rule.Amount(decimal.RequireFromString("10.00"))
	assert.True(t, amount.Equal(decimal.RequireFromString("15.00")), "got %s", amount)
}

func TestDiscountRule_Amount_UnknownTypeIsZero(t *testing.T) {
	rule := DiscountRule{
		DiscountType:  "bogus",
		DiscountValue: decimal.RequireFromString("15.00"),
	}

	assert.True(t, rule.Amount(decimal.RequireFromString("10.00")).IsZero())
}

func TestDiscountRule_Exhausted(t *testing.T) {
	three := 3

	assert.False(t, DiscountRule{}.Exhausted())
	assert.False(t, DiscountRule{MaxUses: &three, CurrentUses: 2}.Exhausted())
	assert.True(t, DiscountRule{MaxUses: &three, CurrentUses: 3}.Exhausted())
	assert.True(t, DiscountRule{MaxUses: &three, CurrentUses: 4}.Exhausted())
}
