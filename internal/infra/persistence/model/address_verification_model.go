package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressVerificationModel mirrors the 'address_verification' table. This
// table predates the *_dttm naming convention used elsewhere.
type AddressVerificationModel struct {
	ID              int64     `gorm:"primaryKey"`
	UUID            uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Address         string    `gorm:"type:text;not null"`
	AddressVerified bool      `gorm:"column:address_verified"`
	Data            string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"column:create_time;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:update_time;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (AddressVerificationModel) TableName() string {
	return "address_verification"
}
