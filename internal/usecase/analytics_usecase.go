package usecase

import (
	"context"

	"perks/internal/domain/entity"
	"perks/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrInvalidRedemptionEvent is returned for events that can never be processed
var ErrInvalidRedemptionEvent = errors.New("invalid redemption event")

// AnalyticsUsecase defines vendor redemption analytics
type AnalyticsUsecase interface {
	// RecordRedemption counts a committed redemption; replays are ignored
	RecordRedemption(ctx context.Context, event *service.RedemptionEvent) error

	// GetVendorAnalytics returns daily counts for the acting vendor over the last days
	GetVendorAnalytics(ctx context.Context, session entity.Session, days int) (*entity.VendorAnalytics, error)
}
