package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorModel is the GORM-specific struct for the 'vendors' table.
type VendorModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerUserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	LogoURL      string    `gorm:"type:text"`
	Location     string    `gorm:"type:text"`
	QRCode       string    `gorm:"column:qr_code;type:varchar(128);not null;index"`
	Active       bool      `gorm:"not null"`
	DiscountText string    `gorm:"type:varchar(64);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
