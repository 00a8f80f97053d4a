package usecase

import (
	"context"

	"perks/internal/domain/entity"

	"github.com/google/uuid"
)

// VendorUsecase defines browsing and self-administration of vendor listings
type VendorUsecase interface {
	// ListActiveVendors retrieves all participating vendors
	ListActiveVendors(ctx context.Context) ([]*entity.Vendor, error)

	// GetVendor retrieves a vendor by ID
	GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// GetOwnVendor retrieves the vendor administered by the acting user
	GetOwnVendor(ctx context.Context, session entity.Session) (*entity.Vendor, error)

	// GenerateVendorQR renders the acting vendor's current QR code as PNG
	GenerateVendorQR(ctx context.Context, session entity.Session) ([]byte, error)

	// RegenerateQRCode replaces the vendor's QR token; the old token stops working immediately
	RegenerateQRCode(ctx context.Context, session entity.Session) (*entity.Vendor, error)

	// UpdateDiscount changes the displayed discount text
	UpdateDiscount(ctx context.Context, session entity.Session, discountText string) (*entity.Vendor, error)

	// SetActive activates or deactivates the vendor listing
	SetActive(ctx context.Context, session entity.Session, active bool) (*entity.Vendor, error)

	// ListVendorRedemptions retrieves the latest redemptions received by the acting vendor
	ListVendorRedemptions(ctx context.Context, session entity.Session, limit int) ([]*entity.Redemption, error)
}
