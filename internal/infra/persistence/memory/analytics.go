package memory

import (
	"context"
	"slices"
	"strings"

	"perks/internal/domain/entity"
	"perks/internal/domain/repository"

	"github.com/google/uuid"
)

// MarkEventProcessed implements repository.AnalyticsRepository.
func (s *Store) MarkEventProcessed(ctx context.Context, redemptionID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.processed[redemptionID]; ok {
		return false, nil
	}
	s.processed[redemptionID] = struct{}{}

	return true, nil
}

// IncrementDailyStat implements repository.AnalyticsRepository.
func (s *Store) IncrementDailyStat(ctx context.Context, vendorID uuid.UUID, day string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats[statKey{vendorID: vendorID, day: day}]++

	return nil
}

// ListDailyStats implements repository.AnalyticsRepository.
func (s *Store) ListDailyStats(ctx context.Context, vendorID uuid.UUID, fromDay, toDay string) ([]*entity.VendorDailyStat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.VendorDailyStat
	for key, count := range s.stats {
		if key.vendorID != vendorID || key.day < fromDay || key.day > toDay {
			continue
		}
		out = append(out, &entity.VendorDailyStat{VendorID: vendorID, Day: key.day, Redemptions: count})
	}
	slices.SortFunc(out, func(a, b *entity.VendorDailyStat) int {
		return strings.Compare(a.Day, b.Day)
	})

	return out, nil
}

// Execute implements repository.TransactionManager. The store has no rollback,
// so fn sees and keeps every write it makes.
func (s *Store) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(s)
}

// NewAnalyticsRepository implements repository.RepositoryFactory.
func (s *Store) NewAnalyticsRepository() repository.AnalyticsRepository {
	return s
}
