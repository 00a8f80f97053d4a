package impl

import (
	"context"
	"log/slog"
	"time"

	"perks/config"
	"perks/internal/domain/clock"
	"perks/internal/domain/constants"
	"perks/internal/domain/entity"
	domainerrors "perks/internal/domain/errors"
	"perks/internal/domain/repository"
	"perks/internal/domain/service"
	"perks/internal/usecase"
	"perks/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultAnalyticsDays = 7
	maxAnalyticsDays     = 90
)

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	vendorRepo    repository.VendorRepository
	txManager     repository.TransactionManager
	clock         clock.Clock
	location      *time.Location
	logger        *slog.Logger
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	AnalyticsRepo repository.AnalyticsRepository
	VendorRepo    repository.VendorRepository
	TxManager     repository.TransactionManager
	Clock         clock.Clock
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(params AnalyticsServiceParams) (usecase.AnalyticsUsecase, error) {
	loc, err := params.Config.Redemption.Location()
	if err != nil {
		return nil, err
	}

	clk := params.Clock
	if clk == nil {
		clk = clock.New()
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &analyticsService{
		analyticsRepo: params.AnalyticsRepo,
		vendorRepo:    params.VendorRepo,
		txManager:     params.TxManager,
		clock:         clk,
		location:      loc,
		logger:        logger,
	}, nil
}

// RecordRedemption counts a committed redemption exactly once
func (s *analyticsService) RecordRedemption(ctx context.Context, event *service.RedemptionEvent) error {
	if event == nil || event.EventType != constants.EventTypeRedemptionCommitted {
		return errors.Wrap(usecase.ErrInvalidRedemptionEvent, "unexpected event type")
	}

	redemptionID, err := uuid.Parse(event.RedemptionID)
	if err != nil {
		return errors.Wrapf(usecase.ErrInvalidRedemptionEvent, "redemption_id %q", event.RedemptionID)
	}
	vendorID, err := uuid.Parse(event.VendorID)
	if err != nil {
		return errors.Wrapf(usecase.ErrInvalidRedemptionEvent, "vendor_id %q", event.VendorID)
	}
	if _, err := time.Parse(util.DayKeyLayout, event.RedemptionDay); err != nil {
		return errors.Wrapf(usecase.ErrInvalidRedemptionEvent, "redemption_day %q", event.RedemptionDay)
	}

	var counted bool
	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewAnalyticsRepository()

		first, err := repo.MarkEventProcessed(ctx, redemptionID)
		if err != nil {
			return errors.Wrap(err, "failed to mark event processed")
		}
		if !first {
			return nil
		}

		if err := repo.IncrementDailyStat(ctx, vendorID, event.RedemptionDay); err != nil {
			return errors.Wrap(err, "failed to increment daily stat")
		}
		counted = true

		return nil
	})
	if err != nil {
		return err
	}

	if !counted {
		s.logger.Debug("Redemption event already counted", slog.String("redemption_id", event.RedemptionID))
	}

	return nil
}

// GetVendorAnalytics returns daily counts for the acting vendor over the last days
func (s *analyticsService) GetVendorAnalytics(ctx context.Context, session entity.Session, days int) (*entity.VendorAnalytics, error) {
	if !session.IsVendor() {
		return nil, domainerrors.ErrForbidden
	}
	if days <= 0 {
		days = defaultAnalyticsDays
	}
	days = min(days, maxAnalyticsDays)

	vendor, err := s.vendorRepo.FindByOwner(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by owner")
	}

	today := util.StartOfDay(s.clock.Now(), s.location)
	keys := make([]string, days)
	for i := range days {
		keys[i] = util.DayKey(today.AddDate(0, 0, i-days+1), s.location)
	}

	stats, err := s.analyticsRepo.ListDailyStats(ctx, vendor.ID, keys[0], keys[days-1])
	if err != nil {
		return nil, errors.Wrap(err, "failed to list daily stats")
	}

	byDay := make(map[string]int64, len(stats))
	for _, stat := range stats {
		byDay[stat.Day] = stat.Redemptions
	}

	result := &entity.VendorAnalytics{
		VendorID: vendor.ID,
		Days:     make([]*entity.VendorDailyStat, 0, days),
	}
	for _, day := range keys {
		count := byDay[day]
		result.Days = append(result.Days, &entity.VendorDailyStat{
			VendorID:    vendor.ID,
			Day:         day,
			Redemptions: count,
		})
		result.Total += count
	}

	return result, nil
}
