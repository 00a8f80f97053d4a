package model

import (
	"time"

	"github.com/google/uuid"
)

// EntitlementModel is the GORM-specific struct for the 'entitlements' table.
// Rows are written by the billing flow; this service only reads them.
type EntitlementModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Plan      string    `gorm:"type:varchar(64);not null"`
	Active    bool      `gorm:"not null"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EntitlementModel) TableName() string {
	return "entitlements"
}
