package usecase

import (
	"context"
	"time"

	"perks/internal/domain/entity"

	"github.com/google/uuid"
)

// ValidatedRedemption is the output of a successful validation and the
// only input the committer accepts.
type ValidatedRedemption struct {
	UserID      uuid.UUID
	Vendor      *entity.Vendor
	Entitlement *entity.Entitlement
	ValidatedAt time.Time
}

// Confirmation carries what the confirmation screen renders, so no further
// backend call is needed after a successful redemption.
type Confirmation struct {
	RedemptionID   uuid.UUID `json:"redemption_id"`
	VendorID       uuid.UUID `json:"vendor_id"`
	VendorName     string    `json:"vendor_name"`
	VendorLogoURL  string    `json:"vendor_logo_url"`
	VendorLocation string    `json:"vendor_location"`
	DiscountText   string    `json:"discount_text"`
	RedeemedAt     time.Time `json:"redeemed_at"`
}

// RedemptionUsecase defines the scan-to-redeem protocol.
// Failures are returned as *errors.RedemptionError from the domain errors package.
type RedemptionUsecase interface {
	// Validate resolves the vendor, checks entitlement and the daily duplicate rule, in that order.
	Validate(ctx context.Context, session entity.Session, code string) (*ValidatedRedemption, error)

	// Commit persists exactly one redemption for a validated attempt.
	Commit(ctx context.Context, session entity.Session, validated *ValidatedRedemption) (*entity.Redemption, error)

	// Redeem runs Validate and Commit as one logical operation.
	Redeem(ctx context.Context, session entity.Session, code string) (*Confirmation, error)

	// ListUserRedemptions retrieves the acting user's latest redemptions.
	ListUserRedemptions(ctx context.Context, session entity.Session, limit int) ([]*entity.Redemption, error)
}

// NewConfirmation builds the confirmation from the resolved vendor and the committed row.
func NewConfirmation(vendor *entity.Vendor, redemption *entity.Redemption) *Confirmation {
	return &Confirmation{
		RedemptionID:   redemption.ID,
		VendorID:       vendor.ID,
		VendorName:     vendor.Name,
		VendorLogoURL:  vendor.LogoURL,
		VendorLocation: vendor.Location,
		DiscountText:   redemption.DiscountApplied,
		RedeemedAt:     redemption.RedeemedAt,
	}
}
