package postgres

import (
	"context"
	"time"

	"perks/internal/domain/entity"
	"perks/internal/domain/repository"
	"perks/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// MarkEventProcessed inserts the redemption into the processed set, reporting whether it was new.
func (repo *analyticsRepository) MarkEventProcessed(ctx context.Context, redemptionID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.ProcessedRedemptionEventModel{
			RedemptionID: redemptionID,
			ProcessedAt:  time.Now(),
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark redemption event processed")
	}

	return result.RowsAffected == 1, nil
}

// IncrementDailyStat upserts the vendor's counter for day.
func (repo *analyticsRepository) IncrementDailyStat(ctx context.Context, vendorID uuid.UUID, day string) error {
	now := time.Now()

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "vendor_id"}, {Name: "day"}},
			DoUpdates: clause.Assignments(map[string]any{
				"redemptions": gorm.Expr("vendor_daily_stats.redemptions + 1"),
				"updated_at":  now,
			}),
		}).
		Create(&model.VendorDailyStatModel{
			VendorID:    vendorID,
			Day:         day,
			Redemptions: 1,
			UpdatedAt:   now,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to increment vendor daily stat")
	}

	return nil
}

// ListDailyStats retrieves counters for days in [fromDay, toDay], oldest first.
func (repo *analyticsRepository) ListDailyStats(ctx context.Context, vendorID uuid.UUID, fromDay, toDay string) ([]*entity.VendorDailyStat, error) {
	var statModels []*model.VendorDailyStatModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ? AND day >= ? AND day <= ?", vendorID, fromDay, toDay).
		Order("day ASC").
		Find(&statModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vendor daily stats")
	}

	stats := make([]*entity.VendorDailyStat, 0, len(statModels))
	for _, statM := range statModels {
		stats = append(stats, &entity.VendorDailyStat{
			VendorID:    statM.VendorID,
			Day:         statM.Day,
			Redemptions: statM.Redemptions,
		})
	}

	return stats, nil
}
