package entity

import (
	"time"

	"github.com/google/uuid"
)

// Redemption is the immutable record of a user redeeming a vendor's discount.
// At most one exists per (UserID, VendorID, RedemptionDay).
type Redemption struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	VendorID        uuid.UUID `json:"vendor_id"`
	DiscountApplied string    `json:"discount_applied"`
	RedeemedAt      time.Time `json:"redeemed_at"`
	RedemptionDay   string    `json:"redemption_day"` // YYYY-MM-DD in the configured redemption zone.
}
