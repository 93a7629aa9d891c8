package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CateringRequest is a committed catering-channel transaction. Like Order,
// the contact fields are a point-in-time snapshot.
type CateringRequest struct {
	ID            int64
	UUID          uuid.UUID
	CustomerID    int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	EventAddress  string
	EventDate     time.Time
	Total         decimal.Decimal
	Payload       CateringPayload
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CateringPayload carries the event description and cart persisted as the
// catering request's JSON data column.
type CateringPayload struct {
	EventDetails        string     `json:"eventDetails"`
	SpecialInstructions string     `json:"specialInstructions"`
	Cart                []CartItem `json:"cart"`
}
