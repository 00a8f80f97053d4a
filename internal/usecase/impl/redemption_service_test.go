package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"perks/config"
	"perks/internal/domain/clock"
	"perks/internal/domain/entity"
	domainerrors "perks/internal/domain/errors"
	"perks/internal/infra/persistence/memory"
	"perks/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type redemptionFixture struct {
	store   *memory.Store
	clock   *clock.FakeClock
	service usecase.RedemptionUsecase
	session entity.Session
	vendor  *entity.Vendor
}

func testConfig(timezone string) *config.Config {
	return &config.Config{
		Redemption: &config.RedemptionConfig{
			Timezone:          timezone,
			OperationTimeout:  time.Second,
			LockTTL:           time.Second,
			LockRetryInterval: 5 * time.Millisecond,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRedemptionFixture(t *testing.T, mutate ...func(*RedemptionServiceParams)) *redemptionFixture {
	t.Helper()

	store := memory.NewStore()
	clk := clock.NewFakeClock(testNow)

	vendor := &entity.Vendor{
		ID:           uuid.New(),
		OwnerUserID:  uuid.New(),
		Name:         "Campus Coffee",
		LogoURL:      "https://cdn.example.com/campus-coffee.png",
		Location:     "12 College Rd",
		QRCode:       "ABC123",
		Active:       true,
		DiscountText: "20% OFF",
	}
	require.NoError(t, store.Create(context.Background(), vendor))

	session := entity.Session{UserID: uuid.New(), Roles: entity.Roles{entity.RoleStudent}}
	store.AddEntitlement(&entity.Entitlement{
		ID:        uuid.New(),
		UserID:    session.UserID,
		Plan:      "monthly",
		Active:    true,
		StartDate: testNow.AddDate(0, 0, -10),
		EndDate:   testNow.AddDate(0, 0, 1),
		CreatedAt: testNow.AddDate(0, 0, -10),
	})

	params := RedemptionServiceParams{
		Store:          store,
		RedemptionRepo: store,
		Clock:          clk,
		Config:         testConfig("UTC"),
		Logger:         discardLogger(),
	}
	for _, fn := range mutate {
		fn(&params)
	}

	svc, err := NewRedemptionService(params)
	require.NoError(t, err)

	return &redemptionFixture{
		store:   store,
		clock:   clk,
		service: svc,
		session: session,
		vendor:  vendor,
	}
}

func requireRedemptionKind(t *testing.T, err error, kind domainerrors.RedemptionErrorKind) *domainerrors.RedemptionError {
	t.Helper()

	var redemptionErr *domainerrors.RedemptionError
	require.ErrorAs(t, err, &redemptionErr)
	require.Equal(t, kind, redemptionErr.Kind, "unexpected kind, error: %v", err)

	return redemptionErr
}

func TestRedemptionService_Redeem_Success(t *testing.T) {
	fx := newRedemptionFixture(t)

	confirmation, err := fx.service.Redeem(context.Background(), fx.session, "ABC123")
	require.NoError(t, err)

	assert.Equal(t, fx.vendor.ID, confirmation.VendorID)
	assert.Equal(t, "20% OFF", confirmation.DiscountText)
	assert.Equal(t, "Campus Coffee", confirmation.VendorName)
	assert.Equal(t, fx.vendor.LogoURL, confirmation.VendorLogoURL)
	assert.Equal(t, fx.vendor.Location, confirmation.VendorLocation)
	assert.Equal(t, testNow, confirmation.RedeemedAt)

	rows := fx.store.Redemptions()
	require.Len(t, rows, 1)
	assert.Equal(t, confirmation.RedemptionID, rows[0].ID)
	assert.Equal(t, "20% OFF", rows[0].DiscountApplied)
	assert.Equal(t, fx.session.UserID, rows[0].UserID)
	assert.Equal(t, "2026-03-10", rows[0].RedemptionDay)
}

func TestRedemptionService_Redeem_TwiceSameDay(t *testing.T) {
	fx := newRedemptionFixture(t)
	ctx := context.Background()

	_, err := fx.service.Redeem(ctx, fx.session, "ABC123")
	require.NoError(t, err)

	confirmation, err := fx.service.Redeem(ctx, fx.session, "ABC123")
	assert.Nil(t, confirmation)
	redemptionErr := requireRedemptionKind(t, err, domainerrors.KindAlreadyRedeemedToday)
	assert.Equal(t, domainerrors.StageCheckDuplicate, redemptionErr.Stage)
	assert.False(t, redemptionErr.Retryable())
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyRedeemedToday))

	assert.Len(t, fx.store.Redemptions(), 1)
}

func TestRedemptionService_Redeem_InactiveVendor(t *testing.T) {
	fx := newRedemptionFixture(t)
	ctx := context.Background()
	require.NoError(t, fx.store.UpdateActive(ctx, fx.vendor.ID, false))

	_, err := fx.service.Redeem(ctx, fx.session, "ABC123")
	redemptionErr := requireRedemptionKind(t, err, domainerrors.KindInvalidCode)
	assert.Equal(t, domainerrors.StageResolveVendor, redemptionErr.Stage)
	assert.True(t, redemptionErr.Retryable())
	assert.Empty(t, fx.store.Redemptions())
}

func TestRedemptionService_Redeem_ExpiredEntitlement(t *testing.T) {
	fx := newRedemptionFixture(t)
	expired := entity.Session{UserID: uuid.New()}
	fx.store.AddEntitlement(&entity.Entitlement{
		ID:        uuid.New(),
		UserID:    expired.UserID,
		Active:    true,
		StartDate: testNow.AddDate(0, -1, 0),
		EndDate:   testNow.AddDate(0, 0, -1),
		CreatedAt: testNow.AddDate(0, -1, 0),
	})

	_, err := fx.service.Redeem(context.Background(), expired, "ABC123")
	requireRedemptionKind(t, err, domainerrors.KindNoEntitlement)
	assert.Empty(t, fx.store.Redemptions())
}

func TestRedemptionService_ConcurrentCommits(t *testing.T) {
	fx := newRedemptionFixture(t)
	ctx := context.Background()

	// Both attempts pass validation before either commits.
	first, err := fx.service.Validate(ctx, fx.session, "ABC123")
	require.NoError(t, err)
	second, err := fx.service.Validate(ctx, fx.session, "ABC123")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, validated := range []*usecase.ValidatedRedemption{first, second} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = fx.service.Commit(ctx, fx.session, validated)
		}()
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		redemptionErr := requireRedemptionKind(t, err, domainerrors.KindAlreadyRedeemedToday)
		assert.Equal(t, domainerrors.StageCommit, redemptionErr.Stage)
		assert.False(t, errors.Is(err, domainerrors.ErrCommitFailed))
	}

	assert.Equal(t, 1, succeeded)
	assert.Len(t, fx.store.Redemptions(), 1)
}

func TestRedemptionService_AtMostOneRedemptionPerDay(t *testing.T) {
	fx := newRedemptionFixture(t)
	ctx := context.Background()

	var succeeded int
	for range 5 {
		_, err := fx.service.Redeem(ctx, fx.session, "ABC123")
		if err == nil {
			succeeded++

			continue
		}
		requireRedemptionKind(t, err, domainerrors.KindAlreadyRedeemedToday)
		fx.clock.Advance(time.Minute)
	}

	assert.Equal(t, 1, succeeded)
	assert.Len(t, fx.store.Redemptions(), 1)
}

func TestRedemptionService_ParallelRedeems(t *testing.T) {
	fx := newRedemptionFixture(t)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.service.Redeem(context.Background(), fx.session, "ABC123")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		requireRedemptionKind(t, err, domainerrors.KindAlreadyRedeemedToday)
	}

	assert.Equal(t, 1, succeeded)
	assert.Len(t, fx.store.Redemptions(), 1)
}

func TestRedemptionService_NoEntitlementNeverReachesDuplicateCheck(t *testing.T) {
	fx := newRedemptionFixture(t)
	stranger := entity.Session{UserID: uuid.New()}

	// A duplicate-check read would surface this failure instead of NoEntitlement.
	fx.store.FailNext(memory.OpFindRedemptionSince, errors.New("duplicate check must not run"))

	_, err := fx.service.Validate(context.Background(), stranger, "ABC123")
	redemptionErr := requireRedemptionKind(t, err, domainerrors.KindNoEntitlement)
	assert.Equal(t, domainerrors.StageCheckEntitlement, redemptionErr.Stage)
	assert.False(t, redemptionErr.Retryable())
}

func TestRedemptionService_InactiveVendorBeatsMissingEntitlement(t *testing.T) {
	fx := newRedemptionFixture(t)
	ctx := context.Background()
	require.NoError(t, fx.store.UpdateActive(ctx, fx.vendor.ID, false))

	tests := []struct {
		name    string
		session entity.Session
	}{
		{name: "entitled user", session: fx.session},
		{name: "user without entitlement", session: entity.Session{UserID: uuid.New()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Redeem(ctx, tt.session, "ABC123")
			requireRedemptionKind(t, err, domainerrors.KindInvalidCode)
		})
	}
}

func TestRedemptionService_DayBoundary(t *testing.T) {
	fx := newRedemptionFixture(t)
	ctx := context.Background()

	fx.clock.Set(time.Date(2026, time.March, 10, 23, 59, 59, 0, time.UTC))
	_, err := fx.service.Redeem(ctx, fx.session, "ABC123")
	require.NoError(t, err)

	fx.clock.Set(time.Date(2026, time.March, 11, 0, 0, 1, 0, time.UTC))
	_, err = fx.service.Redeem(ctx, fx.session, "ABC123")
	require.NoError(t, err)

	rows := fx.store.Redemptions()
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-03-10", rows[0].RedemptionDay)
	assert.Equal(t, "2026-03-11", rows[1].RedemptionDay)
}

func TestRedemptionService_DayBoundaryUsesConfiguredZone(t *testing.T) {
	fx := newRedemptionFixture(t, func(p *RedemptionServiceParams) {
		p.Config = testConfig("Asia/Taipei")
	})
	ctx := context.Background()

	// 23:30 and 00:30 in Taipei (UTC+8).
	fx.clock.Set(time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC))
	_, err := fx.service.Redeem(ctx, fx.session, "ABC123")
	require.NoError(t, err)

	fx.clock.Set(time.Date(2026, time.March, 10, 16, 30, 0, 0, time.UTC))
	_, err = fx.service.Redeem(ctx, fx.session, "ABC123")
	require.NoError(t, err)

	// Still the same UTC day, but a new Taipei day.
	rows := fx.store.Redemptions()
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-03-10", rows[0].RedemptionDay)
	assert.Equal(t, "2026-03-11", rows[1].RedemptionDay)
}

func TestRedemptionService_Validate_UsesNewestEntitlement(t *testing.T) {
	fx := newRedemptionFixture(t)
	newest := &entity.Entitlement{
		ID:        uuid.New(),
		UserID:    fx.session.UserID,
		Plan:      "annual",
		Active:    true,
		StartDate: testNow,
		EndDate:   testNow.AddDate(1, 0, 0),
		CreatedAt: testNow,
	}
	fx.store.AddEntitlement(newest)

	validated, err := fx.service.Validate(context.Background(), fx.session, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, newest.ID, validated.Entitlement.ID)
	assert.Equal(t, fx.vendor.ID, validated.Vendor.ID)
	assert.Empty(t, fx.store.Redemptions())
}

func TestRedemptionService_Validate_AmbiguousCode(t *testing.T) {
	fx := newRedemptionFixture(t)
	require.NoError(t, fx.store.Create(context.Background(), &entity.Vendor{
		Name:   "Copycat Cafe",
		QRCode: "ABC123",
		Active: true,
	}))

	_, err := fx.service.Validate(context.Background(), fx.session, "ABC123")
	requireRedemptionKind(t, err, domainerrors.KindInvalidCode)
}

func TestRedemptionService_Validate_UnknownAndBlankCodes(t *testing.T) {
	fx := newRedemptionFixture(t)

	for _, code := range []string{"NOPE", "", "   "} {
		_, err := fx.service.Validate(context.Background(), fx.session, code)
		requireRedemptionKind(t, err, domainerrors.KindInvalidCode)
	}
}

func TestRedemptionService_StoreFailures(t *testing.T) {
	tests := []struct {
		name  string
		op    string
		kind  domainerrors.RedemptionErrorKind
		stage domainerrors.RedemptionStage
	}{
		{
			name:  "vendor lookup",
			op:    memory.OpFindVendorByCode,
			kind:  domainerrors.KindBackendUnavailable,
			stage: domainerrors.StageResolveVendor,
		},
		{
			name:  "entitlement lookup",
			op:    memory.OpFindActiveEntitlement,
			kind:  domainerrors.KindBackendUnavailable,
			stage: domainerrors.StageCheckEntitlement,
		},
		{
			name:  "duplicate lookup",
			op:    memory.OpFindRedemptionSince,
			kind:  domainerrors.KindBackendUnavailable,
			stage: domainerrors.StageCheckDuplicate,
		},
		{
			name:  "insert",
			op:    memory.OpInsertRedemption,
			kind:  domainerrors.KindCommitFailed,
			stage: domainerrors.StageCommit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newRedemptionFixture(t)
			fx.store.FailNext(tt.op, errors.New("connection reset by peer"))

			_, err := fx.service.Redeem(context.Background(), fx.session, "ABC123")
			redemptionErr := requireRedemptionKind(t, err, tt.kind)
			assert.Equal(t, tt.stage, redemptionErr.Stage)
			assert.True(t, redemptionErr.Retryable())
			assert.NotContains(t, redemptionErr.Message(), "connection reset")
			assert.Empty(t, fx.store.Redemptions())

			// The failure was transient: scanning again succeeds.
			_, err = fx.service.Redeem(context.Background(), fx.session, "ABC123")
			require.NoError(t, err)
		})
	}
}

func TestRedemptionService_Commit_RejectsForeignValidation(t *testing.T) {
	fx := newRedemptionFixture(t)
	ctx := context.Background()

	validated, err := fx.service.Validate(ctx, fx.session, "ABC123")
	require.NoError(t, err)

	_, err = fx.service.Commit(ctx, entity.Session{UserID: uuid.New()}, validated)
	requireRedemptionKind(t, err, domainerrors.KindCommitFailed)

	_, err = fx.service.Commit(ctx, fx.session, nil)
	requireRedemptionKind(t, err, domainerrors.KindCommitFailed)
	assert.Empty(t, fx.store.Redemptions())
}

func TestRedemptionService_Commit_CopiesDiscountFromValidatedVendor(t *testing.T) {
	fx := newRedemptionFixture(t)
	ctx := context.Background()

	validated, err := fx.service.Validate(ctx, fx.session, "ABC123")
	require.NoError(t, err)

	fx.clock.Advance(2 * time.Second)
	redemption, err := fx.service.Commit(ctx, fx.session, validated)
	require.NoError(t, err)

	assert.Equal(t, "20% OFF", redemption.DiscountApplied)
	assert.Equal(t, testNow.Add(2*time.Second), redemption.RedeemedAt)
}

func TestRedemptionService_ListUserRedemptions(t *testing.T) {
	fx := newRedemptionFixture(t)
	ctx := context.Background()

	other := &entity.Vendor{Name: "Bookshop", QRCode: "BOOK42", Active: true, DiscountText: "10% OFF"}
	require.NoError(t, fx.store.Create(ctx, other))

	_, err := fx.service.Redeem(ctx, fx.session, "ABC123")
	require.NoError(t, err)
	fx.clock.Advance(time.Minute)
	_, err = fx.service.Redeem(ctx, fx.session, "BOOK42")
	require.NoError(t, err)

	all, err := fx.service.ListUserRedemptions(ctx, fx.session, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, other.ID, all[0].VendorID, "newest first")

	latest, err := fx.service.ListUserRedemptions(ctx, fx.session, 1)
	require.NoError(t, err)
	assert.Len(t, latest, 1)
}

func TestNewRedemptionService_InvalidTimezone(t *testing.T) {
	_, err := NewRedemptionService(RedemptionServiceParams{
		Store:  memory.NewStore(),
		Config: testConfig("Mars/Olympus_Mons"),
	})
	assert.Error(t, err)
}
