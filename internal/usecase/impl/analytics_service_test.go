package impl

import (
	"context"
	"testing"

	"perks/internal/domain/clock"
	"perks/internal/domain/constants"
	"perks/internal/domain/entity"
	domainerrors "perks/internal/domain/errors"
	"perks/internal/domain/service"
	"perks/internal/infra/persistence/memory"
	"perks/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsFixture(t *testing.T) (*memory.Store, usecase.AnalyticsUsecase) {
	t.Helper()

	store := memory.NewStore()
	svc, err := NewAnalyticsService(AnalyticsServiceParams{
		AnalyticsRepo: store,
		VendorRepo:    store,
		TxManager:     store,
		Clock:         clock.NewFakeClock(testNow),
		Config:        testConfig("UTC"),
		Logger:        discardLogger(),
	})
	require.NoError(t, err)

	return store, svc
}

func redemptionEvent(vendorID uuid.UUID, day string) *service.RedemptionEvent {
	return &service.RedemptionEvent{
		EventType:     constants.EventTypeRedemptionCommitted,
		RedemptionID:  uuid.NewString(),
		UserID:        uuid.NewString(),
		VendorID:      vendorID.String(),
		RedemptionDay: day,
		RedeemedAt:    testNow,
	}
}

func TestAnalyticsService_RecordRedemption_CountsOnce(t *testing.T) {
	store, svc := newAnalyticsFixture(t)
	ctx := context.Background()
	vendorID := uuid.New()

	event := redemptionEvent(vendorID, "2026-03-10")
	require.NoError(t, svc.RecordRedemption(ctx, event))
	require.NoError(t, svc.RecordRedemption(ctx, event), "replayed delivery")
	require.NoError(t, svc.RecordRedemption(ctx, redemptionEvent(vendorID, "2026-03-10")))

	stats, err := store.ListDailyStats(ctx, vendorID, "2026-03-10", "2026-03-10")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(2), stats[0].Redemptions)
}

func TestAnalyticsService_RecordRedemption_InvalidEvents(t *testing.T) {
	_, svc := newAnalyticsFixture(t)

	valid := redemptionEvent(uuid.New(), "2026-03-10")
	tests := []struct {
		name   string
		mutate func(e *service.RedemptionEvent)
	}{
		{name: "wrong type", mutate: func(e *service.RedemptionEvent) { e.EventType = "redemption.deleted" }},
		{name: "bad redemption id", mutate: func(e *service.RedemptionEvent) { e.RedemptionID = "nope" }},
		{name: "bad vendor id", mutate: func(e *service.RedemptionEvent) { e.VendorID = "" }},
		{name: "bad day", mutate: func(e *service.RedemptionEvent) { e.RedemptionDay = "10/03/2026" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := *valid
			tt.mutate(&event)

			err := svc.RecordRedemption(context.Background(), &event)
			assert.ErrorIs(t, err, usecase.ErrInvalidRedemptionEvent)
		})
	}

	assert.ErrorIs(t, svc.RecordRedemption(context.Background(), nil), usecase.ErrInvalidRedemptionEvent)
}

func TestAnalyticsService_GetVendorAnalytics(t *testing.T) {
	store, svc := newAnalyticsFixture(t)
	ctx := context.Background()
	owner := entity.Session{UserID: uuid.New(), Roles: entity.Roles{entity.RoleVendor}}
	vendor := &entity.Vendor{OwnerUserID: owner.UserID, Name: "Campus Coffee", Active: true}
	require.NoError(t, store.Create(ctx, vendor))

	for _, day := range []string{"2026-03-10", "2026-03-10", "2026-03-08", "2026-03-01"} {
		require.NoError(t, svc.RecordRedemption(ctx, redemptionEvent(vendor.ID, day)))
	}

	analytics, err := svc.GetVendorAnalytics(ctx, owner, 3)
	require.NoError(t, err)
	require.Len(t, analytics.Days, 3)
	assert.Equal(t, "2026-03-08", analytics.Days[0].Day)
	assert.Equal(t, int64(1), analytics.Days[0].Redemptions)
	assert.Equal(t, "2026-03-09", analytics.Days[1].Day)
	assert.Equal(t, int64(0), analytics.Days[1].Redemptions)
	assert.Equal(t, "2026-03-10", analytics.Days[2].Day)
	assert.Equal(t, int64(2), analytics.Days[2].Redemptions)
	assert.Equal(t, int64(3), analytics.Total)

	week, err := svc.GetVendorAnalytics(ctx, owner, 0)
	require.NoError(t, err)
	assert.Len(t, week.Days, defaultAnalyticsDays)
}

func TestAnalyticsService_GetVendorAnalytics_Forbidden(t *testing.T) {
	_, svc := newAnalyticsFixture(t)

	_, err := svc.GetVendorAnalytics(context.Background(), entity.Session{UserID: uuid.New()}, 7)
	assert.Equal(t, domainerrors.ErrForbidden, err)
}
