package scan

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"perks/config"
	"perks/internal/domain/clock"
	"perks/internal/domain/entity"
	domainerrors "perks/internal/domain/errors"
	"perks/internal/infra/persistence/memory"
	"perks/internal/usecase"
	"perks/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type blockingRedeemer struct {
	calls   atomic.Int32
	release chan struct{}
}

func newBlockingRedeemer() *blockingRedeemer {
	return &blockingRedeemer{release: make(chan struct{})}
}

func (r *blockingRedeemer) Redeem(_ context.Context, payload string) (*usecase.Confirmation, error) {
	r.calls.Add(1)
	<-r.release

	return &usecase.Confirmation{RedemptionID: uuid.New(), DiscountText: payload}, nil
}

type countingMetrics struct {
	mu      sync.Mutex
	ignored map[string]int
}

func (m *countingMetrics) ObserveRedemption(string, time.Duration) {}

func (m *countingMetrics) IncScanIgnored(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ignored[reason]++
}

func (m *countingMetrics) count(reason string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ignored[reason]
}

func quietOptions(clk clock.Clock, cooldown time.Duration) Options {
	return Options{
		Cooldown: cooldown,
		Clock:    clk,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestIntake_DebouncesWhileProcessing(t *testing.T) {
	redeemer := newBlockingRedeemer()
	metrics := &countingMetrics{ignored: make(map[string]int)}
	results := make(chan Result, 10)

	opts := quietOptions(clock.NewFakeClock(start), 0)
	opts.Metrics = metrics
	intake := NewIntake(context.Background(), redeemer.Redeem, func(r Result) { results <- r }, opts)

	require.True(t, intake.OnCodeScanned("ABC123"))
	for range 20 {
		assert.False(t, intake.OnCodeScanned("ABC123"))
	}
	assert.Equal(t, Processing, intake.State())

	close(redeemer.release)
	intake.Wait()

	assert.Equal(t, int32(1), redeemer.calls.Load())
	assert.Equal(t, 20, metrics.count(IgnoredProcessing))
	require.Len(t, results, 1)
	assert.Equal(t, Idle, intake.State())
}

func TestIntake_IgnoresBlankPayloads(t *testing.T) {
	redeemer := newBlockingRedeemer()
	close(redeemer.release)
	intake := NewIntake(context.Background(), redeemer.Redeem, nil, quietOptions(clock.NewFakeClock(start), 0))

	for _, payload := range []string{"", " ", "\t\n"} {
		assert.False(t, intake.OnCodeScanned(payload))
	}
	assert.Equal(t, Idle, intake.State())
	assert.Equal(t, int32(0), redeemer.calls.Load())
}

func TestIntake_TrimsPayload(t *testing.T) {
	var got string
	intake := NewIntake(context.Background(), func(_ context.Context, payload string) (*usecase.Confirmation, error) {
		got = payload

		return &usecase.Confirmation{}, nil
	}, nil, quietOptions(clock.NewFakeClock(start), 0))

	require.True(t, intake.OnCodeScanned("  ABC123\n"))
	intake.Wait()
	assert.Equal(t, "ABC123", got)
}

func TestIntake_Cooldown(t *testing.T) {
	clk := clock.NewFakeClock(start)
	redeemer := newBlockingRedeemer()
	close(redeemer.release)
	intake := NewIntake(context.Background(), redeemer.Redeem, nil, quietOptions(clk, 2*time.Second))

	require.True(t, intake.OnCodeScanned("ABC123"))
	intake.Wait()
	assert.Equal(t, Cooldown, intake.State())

	clk.Advance(1999 * time.Millisecond)
	assert.False(t, intake.OnCodeScanned("ABC123"))
	assert.Equal(t, Cooldown, intake.State())

	clk.Advance(time.Millisecond)
	assert.Equal(t, Idle, intake.State())
	require.True(t, intake.OnCodeScanned("ABC123"))
	intake.Wait()

	assert.Equal(t, int32(2), redeemer.calls.Load())
}

func TestIntake_CooldownElapsedScanIsAccepted(t *testing.T) {
	clk := clock.NewFakeClock(start)
	redeemer := newBlockingRedeemer()
	close(redeemer.release)
	intake := NewIntake(context.Background(), redeemer.Redeem, nil, quietOptions(clk, time.Second))

	require.True(t, intake.OnCodeScanned("ABC123"))
	intake.Wait()

	// No State() call in between: the scan itself observes the elapsed cooldown.
	clk.Advance(5 * time.Second)
	assert.True(t, intake.OnCodeScanned("ABC123"))
	intake.Wait()
}

func TestIntake_CloseDiscardsInFlightResult(t *testing.T) {
	redeemer := newBlockingRedeemer()
	var delivered atomic.Int32
	intake := NewIntake(context.Background(), redeemer.Redeem, func(Result) { delivered.Add(1) },
		quietOptions(clock.NewFakeClock(start), 0))

	require.True(t, intake.OnCodeScanned("ABC123"))
	intake.Close()

	close(redeemer.release)
	intake.Wait()

	assert.Equal(t, int32(1), redeemer.calls.Load(), "in-flight work still completes")
	assert.Equal(t, int32(0), delivered.Load())
	assert.False(t, intake.OnCodeScanned("ABC123"))
}

func TestIntake_InFlightWorkOutlivesCallerContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	finish := make(chan struct{})
	var ctxErr atomic.Value

	intake := NewIntake(ctx, func(ctx context.Context, _ string) (*usecase.Confirmation, error) {
		close(started)
		<-finish
		ctxErr.Store(ctx.Err() == nil)

		return &usecase.Confirmation{}, nil
	}, nil, quietOptions(clock.NewFakeClock(start), 0))

	require.True(t, intake.OnCodeScanned("ABC123"))
	<-started
	cancel()
	close(finish)
	intake.Wait()

	assert.Equal(t, true, ctxErr.Load())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "processing", Processing.String())
	assert.Equal(t, "cooldown", Cooldown.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestIntake_RepeatedFramesRedeemOnce(t *testing.T) {
	store := memory.NewStore()
	clk := clock.NewFakeClock(start)
	ctx := context.Background()

	vendor := &entity.Vendor{Name: "Campus Coffee", QRCode: "ABC123", Active: true, DiscountText: "20% OFF"}
	require.NoError(t, store.Create(ctx, vendor))
	session := entity.Session{UserID: uuid.New(), Roles: entity.Roles{entity.RoleStudent}}
	store.AddEntitlement(&entity.Entitlement{
		ID:        uuid.New(),
		UserID:    session.UserID,
		Active:    true,
		EndDate:   start.AddDate(0, 0, 1),
		CreatedAt: start.AddDate(0, 0, -1),
	})

	redemptions, err := impl.NewRedemptionService(impl.RedemptionServiceParams{
		Store:          store,
		RedemptionRepo: store,
		Clock:          clk,
		Config: &config.Config{Redemption: &config.RedemptionConfig{
			OperationTimeout: time.Second,
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	results := make(chan Result, 4)
	intake := NewIntake(ctx, func(ctx context.Context, payload string) (*usecase.Confirmation, error) {
		return redemptions.Redeem(ctx, session, payload)
	}, func(r Result) { results <- r }, quietOptions(clk, 0))

	// Two frames of the same still-visible code.
	intake.OnCodeScanned("ABC123")
	intake.OnCodeScanned("ABC123")
	intake.Wait()

	first := <-results
	require.NoError(t, first.Err)
	assert.Equal(t, "20% OFF", first.Confirmation.DiscountText)
	assert.Equal(t, vendor.ID, first.Confirmation.VendorID)

	// A later scan of the same code reaches the validator and is refused.
	require.True(t, intake.OnCodeScanned("ABC123"))
	intake.Wait()

	second := <-results
	assert.Nil(t, second.Confirmation)
	assert.ErrorIs(t, second.Err, domainerrors.ErrAlreadyRedeemedToday)

	assert.Len(t, store.Redemptions(), 1)
}
