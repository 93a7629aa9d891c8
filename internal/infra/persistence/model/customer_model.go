// Package model contains the GORM-specific structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CustomerModel mirrors the 'customers' table. The integer id is the internal
// key orders reference; the UUID is the only identifier exposed to clients.
// The data column is the schema-less attribute bag of rolling aggregates.
type CustomerModel struct {
	ID               int64          `gorm:"primaryKey"`
	UUID             uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	Name             string         `gorm:"type:varchar(255)"`
	Email            string         `gorm:"type:varchar(255);index"`
	Phone            string         `gorm:"type:varchar(50);index"`
	ConsentToUpdates bool           `gorm:"column:consent_to_updates"`
	Data             datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt        time.Time      `gorm:"column:created_dttm;autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"column:updated_dttm;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
