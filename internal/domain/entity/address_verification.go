package entity

import (
	"time"

	"github.com/google/uuid"
)

// AddressVerification records the outcome of a delivery-address check made by
// the storefront before an order is placed.
type AddressVerification struct {
	ID        int64
	UUID      uuid.UUID
	Address   string
	Verified  bool
	Data      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
