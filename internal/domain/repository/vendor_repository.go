package repository

import (
	"context"

	"perks/internal/domain/entity"

	"github.com/google/uuid"
)

// VendorRepository defines the vendor administration operations.
type VendorRepository interface {
	// Create persists a new vendor.
	Create(ctx context.Context, vendor *entity.Vendor) error

	// FindByID retrieves a vendor by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// FindByOwner retrieves the vendor administered by ownerUserID.
	FindByOwner(ctx context.Context, ownerUserID uuid.UUID) (*entity.Vendor, error)

	// ListActive retrieves all active vendors ordered by name.
	ListActive(ctx context.Context) ([]*entity.Vendor, error)

	// UpdateQRCode replaces the vendor's QR token, invalidating the previous one.
	UpdateQRCode(ctx context.Context, id uuid.UUID, code string) error

	// UpdateDiscountText changes the displayed discount.
	UpdateDiscountText(ctx context.Context, id uuid.UUID, discountText string) error

	// UpdateActive activates or deactivates the vendor.
	UpdateActive(ctx context.Context, id uuid.UUID, active bool) error
}
