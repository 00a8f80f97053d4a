package model

import (
	"time"

	"github.com/google/uuid"
)

// RedemptionModel is the GORM-specific struct for the 'redemptions' table.
// The unique index on (user_id, vendor_id, redemption_day) enforces one redemption per day.
type RedemptionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_redemptions_user_vendor_day,priority:1"`
	VendorID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_redemptions_user_vendor_day,priority:2"`
	DiscountApplied string    `gorm:"type:varchar(64);not null"`
	RedeemedAt      time.Time `gorm:"not null"`
	RedemptionDay   string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_redemptions_user_vendor_day,priority:3"`
}

// TableName explicitly sets the table name for GORM.
func (RedemptionModel) TableName() string {
	return "redemptions"
}
