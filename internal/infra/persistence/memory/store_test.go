package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"perks/internal/domain/entity"
	"perks/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func addVendor(t *testing.T, s *Store, code string, active bool) *entity.Vendor {
	t.Helper()

	vendor := &entity.Vendor{Name: "Vendor " + code, QRCode: code, Active: active, DiscountText: "20% OFF"}
	require.NoError(t, s.Create(context.Background(), vendor))

	return vendor
}

func TestStore_FindVendorByCode(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	vendor := addVendor(t, s, "ABC123", true)
	addVendor(t, s, "OFF", false)

	found, err := s.FindVendorByCode(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, found.ID)

	// Returned vendors are copies.
	found.Name = "changed"
	again, err := s.FindVendorByCode(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "Vendor ABC123", again.Name)

	_, err = s.FindVendorByCode(ctx, "OFF")
	assert.ErrorIs(t, err, repository.ErrVendorNotFound)

	addVendor(t, s, "ABC123", true)
	_, err = s.FindVendorByCode(ctx, "ABC123")
	assert.ErrorIs(t, err, repository.ErrVendorCodeAmbiguous)
}

func TestStore_FindActiveEntitlement(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	userID := uuid.New()

	s.AddEntitlement(&entity.Entitlement{ID: uuid.New(), UserID: userID, Active: true, EndDate: now.Add(-time.Hour), CreatedAt: now.AddDate(0, -1, 0)})
	_, err := s.FindActiveEntitlement(ctx, userID, now)
	assert.ErrorIs(t, err, repository.ErrEntitlementNotFound)

	newest := uuid.New()
	s.AddEntitlement(&entity.Entitlement{ID: uuid.New(), UserID: userID, Active: true, EndDate: now.AddDate(0, 1, 0), CreatedAt: now.AddDate(0, 0, -5)})
	s.AddEntitlement(&entity.Entitlement{ID: newest, UserID: userID, Active: true, EndDate: now.AddDate(0, 0, 7), CreatedAt: now.AddDate(0, 0, -1)})

	found, err := s.FindActiveEntitlement(ctx, userID, now)
	require.NoError(t, err)
	assert.Equal(t, newest, found.ID)
}

func TestStore_InsertRedemptionOncePerDay(t *testing.T) {
	s := NewStore()
	vendor := addVendor(t, s, "ABC123", true)
	userID := uuid.New()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = s.InsertRedemption(context.Background(), &entity.Redemption{
				ID:            uuid.New(),
				UserID:        userID,
				VendorID:      vendor.ID,
				RedeemedAt:    now,
				RedemptionDay: "2026-03-10",
			})
		}()
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, repository.ErrDuplicateRedemption)
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, s.Redemptions(), 1)

	require.NoError(t, s.InsertRedemption(context.Background(), &entity.Redemption{
		ID:            uuid.New(),
		UserID:        userID,
		VendorID:      vendor.ID,
		RedeemedAt:    now.AddDate(0, 0, 1),
		RedemptionDay: "2026-03-11",
	}))
}

func TestStore_FailNext(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	addVendor(t, s, "ABC123", true)
	boom := errors.New("connection reset")

	s.FailNext(OpFindVendorByCode, boom)

	_, err := s.FindVendorByCode(ctx, "ABC123")
	assert.ErrorIs(t, err, boom)

	// Only the next call fails.
	_, err = s.FindVendorByCode(ctx, "ABC123")
	assert.NoError(t, err)
}

func TestStore_CanceledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.FindRedemptionSince(ctx, uuid.New(), uuid.New(), now)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	first := addVendor(t, s, "A", true)
	second := addVendor(t, s, "B", true)
	userID := uuid.New()

	for i, vendor := range []*entity.Vendor{first, second} {
		require.NoError(t, s.InsertRedemption(ctx, &entity.Redemption{
			ID:            uuid.New(),
			UserID:        userID,
			VendorID:      vendor.ID,
			RedeemedAt:    now.Add(time.Duration(i) * time.Minute),
			RedemptionDay: "2026-03-10",
		}))
	}

	byUser, err := s.ListByUser(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, second.ID, byUser[0].VendorID)

	limited, err := s.ListByUser(ctx, userID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	byVendor, err := s.ListByVendor(ctx, first.ID, 10)
	require.NoError(t, err)
	assert.Len(t, byVendor, 1)
}

func TestStore_Analytics(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	vendorID := uuid.New()
	eventID := uuid.New()

	first, err := s.MarkEventProcessed(ctx, eventID)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := s.MarkEventProcessed(ctx, eventID)
	require.NoError(t, err)
	assert.False(t, again)

	for _, day := range []string{"2026-03-12", "2026-03-10", "2026-03-10", "2026-03-01"} {
		require.NoError(t, s.IncrementDailyStat(ctx, vendorID, day))
	}

	stats, err := s.ListDailyStats(ctx, vendorID, "2026-03-05", "2026-03-12")
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "2026-03-10", stats[0].Day)
	assert.Equal(t, int64(2), stats[0].Redemptions)
	assert.Equal(t, "2026-03-12", stats[1].Day)
}

func TestStore_VendorUpdates(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	vendor := addVendor(t, s, "ABC123", true)

	require.NoError(t, s.UpdateActive(ctx, vendor.ID, false))
	require.NoError(t, s.UpdateQRCode(ctx, vendor.ID, "NEW"))
	require.NoError(t, s.UpdateDiscountText(ctx, vendor.ID, "2 for 1"))

	stored, err := s.FindByID(ctx, vendor.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
	assert.Equal(t, "NEW", stored.QRCode)
	assert.Equal(t, "2 for 1", stored.DiscountText)

	active, err := s.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	assert.ErrorIs(t, s.UpdateActive(ctx, uuid.New(), true), repository.ErrVendorNotFound)
}
