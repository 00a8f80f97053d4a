package model

import (
	"time"

	"github.com/google/uuid"
)

// ProcessedRedemptionEventModel records which redemption events were already counted.
type ProcessedRedemptionEventModel struct {
	RedemptionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProcessedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProcessedRedemptionEventModel) TableName() string {
	return "processed_redemption_events"
}

// VendorDailyStatModel is the GORM-specific struct for the 'vendor_daily_stats' table.
type VendorDailyStatModel struct {
	VendorID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Day         string    `gorm:"type:varchar(10);primaryKey"`
	Redemptions int64     `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorDailyStatModel) TableName() string {
	return "vendor_daily_stats"
}
