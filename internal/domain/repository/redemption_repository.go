package repository

import (
	"context"

	"perks/internal/domain/entity"

	"github.com/google/uuid"
)

// RedemptionRepository defines the history queries over redemptions.
type RedemptionRepository interface {
	// ListByUser retrieves the latest redemptions made by a user.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Redemption, error)

	// ListByVendor retrieves the latest redemptions received by a vendor.
	ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]*entity.Redemption, error)
}
