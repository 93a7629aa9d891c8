package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem is a catalog entry served by the plain read endpoints.
type MenuItem struct {
	ID        int64
	UUID      uuid.UUID
	ItemName  string
	Category  string
	Price     decimal.Decimal
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
