package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DiscountCodeModel mirrors the 'discount_codes' table. The rule payload
// (type, value, limits, current use count) lives in the JSON data column;
// redemption increments current_uses inside that payload with a conditional
// update so concurrent redeems cannot exceed max_uses.
type DiscountCodeModel struct {
	ID          int64          `gorm:"primaryKey"`
	UUID        uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	Code        string         `gorm:"type:varchar(100);uniqueIndex;not null"`
	Data        datatypes.JSON `gorm:"type:jsonb"`
	IsActive    bool           `gorm:"column:is_active;default:true"`
	ExpiresDttm time.Time      `gorm:"column:expires_dttm"`
	CreatedAt   time.Time      `gorm:"column:created_dttm;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_dttm;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (DiscountCodeModel) TableName() string {
	return "discount_codes"
}
