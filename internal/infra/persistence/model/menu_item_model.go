package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemModel mirrors the 'menu_items' table.
type MenuItemModel struct {
	ID        int64           `gorm:"primaryKey"`
	UUID      uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	ItemName  string          `gorm:"column:item_name;type:varchar(255);not null"`
	Category  string          `gorm:"type:varchar(100)"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2)"`
	Quantity  int
	CreatedAt time.Time `gorm:"column:created_dttm;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_dttm;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}
