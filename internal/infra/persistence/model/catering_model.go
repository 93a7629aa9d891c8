package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CateringRequestModel mirrors the 'catering_requests' table.
type CateringRequestModel struct {
	ID              int64           `gorm:"primaryKey"`
	UUID            uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	CustomerID      int64           `gorm:"column:customer_id;not null;index"`
	CustomerName    string          `gorm:"type:varchar(255)"`
	CustomerEmail   string          `gorm:"type:varchar(255)"`
	CustomerPhone   string          `gorm:"type:varchar(50)"`
	DeliveryAddress string          `gorm:"type:text"`
	DeliveryDate    time.Time       `gorm:"column:delivery_date"`
	OrderTotal      decimal.Decimal `gorm:"column:order_total;type:numeric(10,2)"`
	Data            datatypes.JSON  `gorm:"type:jsonb"`
	CreatedAt       time.Time       `gorm:"column:created_dttm;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_dttm;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (CateringRequestModel) TableName() string {
	return "catering_requests"
}
