package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a committed standard-channel transaction. The customer contact
// fields are a snapshot taken at submission time and are never synced with
// later edits to the Customer row.
type Order struct {
	ID              int64
	UUID            uuid.UUID
	CustomerID      int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string
	DeliveryDate    time.Time
	Total           decimal.Decimal
	Tip             decimal.Decimal
	Discount        decimal.Decimal
	Status          string
	Payload         OrderPayload
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderPayload carries the line items and derived fields persisted as the
// order's JSON data column.
type OrderPayload struct {
	Items          []CartItem      `json:"items"`
	AdditionalInfo string          `json:"additionalInfo"`
	PaymentToken   string          `json:"paymentToken"`
	SalesTax       decimal.Decimal `json:"salesTax"`
	DiscountCode   string          `json:"discountCode"`
}

// CartItem is a single menu selection within an order or catering cart,
// including the tray-upgrade and sauce add-on quantities the kitchen prices
// separately.
type CartItem struct {
	ItemName       string          `json:"itemName"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	SelectedServes *int            `json:"selectedServes,omitempty"`
	SelectedSize   string          `json:"selectedSize,omitempty"`
	Upgrade24Qty   int             `json:"upgradePhadThai24Qty,omitempty"`
	Upgrade48Qty   int             `json:"upgradePhadThai48Qty,omitempty"`
	AddOnQty       int             `json:"addOnQty,omitempty"`
}
