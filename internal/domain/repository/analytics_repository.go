package repository

import (
	"context"

	"perks/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsRepository maintains per-vendor daily redemption counters.
type AnalyticsRepository interface {
	// MarkEventProcessed records that the redemption was counted.
	// It returns false when the redemption had already been counted.
	MarkEventProcessed(ctx context.Context, redemptionID uuid.UUID) (bool, error)

	// IncrementDailyStat adds one redemption to the vendor's counter for day.
	IncrementDailyStat(ctx context.Context, vendorID uuid.UUID, day string) error

	// ListDailyStats returns counters for days in [fromDay, toDay], oldest first.
	ListDailyStats(ctx context.Context, vendorID uuid.UUID, fromDay, toDay string) ([]*entity.VendorDailyStat, error)
}
