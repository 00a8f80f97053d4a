// Package scan debounces scanned payloads so each physical scan produces at most one
// redemption attempt, however many frames the capture surface reports.
package scan

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"perks/internal/domain/clock"
	"perks/internal/domain/service"
	"perks/internal/usecase"
)

// State of an Intake.
type State int

const (
	Idle State = iota
	Processing
	Cooldown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Processing:
		return "processing"
	case Cooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Reasons reported for ignored scans.
const (
	IgnoredEmpty      = "empty"
	IgnoredProcessing = "processing"
	IgnoredCooldown   = "cooldown"
	IgnoredClosed     = "closed"
)

// Result is the outcome of one accepted scan. Exactly one of Confirmation and Err is set.
type Result struct {
	Payload      string
	Confirmation *usecase.Confirmation
	Err          error
}

// RedeemFunc performs the redemption for a scanned payload.
type RedeemFunc func(ctx context.Context, payload string) (*usecase.Confirmation, error)

// Options configures an Intake.
type Options struct {
	// Cooldown after a result during which scans are ignored. Zero returns straight to Idle.
	Cooldown time.Duration
	Clock    clock.Clock
	Logger   *slog.Logger
	Metrics  service.RedemptionMetrics
}

// Intake is the scan state machine for one scan surface.
type Intake struct {
	redeem   RedeemFunc
	onResult func(Result)
	baseCtx  context.Context
	cooldown time.Duration
	clock    clock.Clock
	logger   *slog.Logger
	metrics  service.RedemptionMetrics

	mu            sync.Mutex
	state         State
	cooldownUntil time.Time
	closed        bool

	// deliverMu orders result delivery against Close.
	deliverMu sync.Mutex
	inflight  sync.WaitGroup
}

// NewIntake creates an Idle intake. In-flight redemptions run with ctx's values but not its
// cancellation, so they complete even if the surface goes away. onResult must not call Close.
func NewIntake(ctx context.Context, redeem RedeemFunc, onResult func(Result), opts Options) *Intake {
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Intake{
		redeem:   redeem,
		onResult: onResult,
		baseCtx:  context.WithoutCancel(ctx),
		cooldown: max(opts.Cooldown, 0),
		clock:    clk,
		logger:   logger,
		metrics:  opts.Metrics,
		state:    Idle,
	}
}

// OnCodeScanned reports a decoded payload. It returns true when the scan started a redemption.
func (i *Intake) OnCodeScanned(payload string) bool {
	payload = strings.TrimSpace(payload)

	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed {
		i.ignored(IgnoredClosed)

		return false
	}
	if payload == "" {
		i.ignored(IgnoredEmpty)

		return false
	}

	switch i.currentLocked() {
	case Processing:
		i.ignored(IgnoredProcessing)

		return false
	case Cooldown:
		i.ignored(IgnoredCooldown)

		return false
	}

	i.state = Processing
	i.inflight.Add(1)
	go i.process(payload)

	return true
}

// State returns the current state, leaving Cooldown once it has elapsed.
func (i *Intake) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.currentLocked()
}

// Close tears the intake down. In-flight work finishes but its result is dropped,
// and no result is delivered after Close returns.
func (i *Intake) Close() {
	i.deliverMu.Lock()
	defer i.deliverMu.Unlock()

	i.mu.Lock()
	i.closed = true
	i.mu.Unlock()
}

// Wait blocks until in-flight work has finished.
func (i *Intake) Wait() {
	i.inflight.Wait()
}

func (i *Intake) process(payload string) {
	defer i.inflight.Done()

	confirmation, err := i.redeem(i.baseCtx, payload)

	i.deliverMu.Lock()
	defer i.deliverMu.Unlock()

	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		i.logger.Debug("Discarding scan result after close", slog.Bool("success", err == nil))

		return
	}
	if i.cooldown > 0 {
		i.state = Cooldown
		i.cooldownUntil = i.clock.Now().Add(i.cooldown)
	} else {
		i.state = Idle
	}
	i.mu.Unlock()

	if i.onResult != nil {
		i.onResult(Result{Payload: payload, Confirmation: confirmation, Err: err})
	}
}

// currentLocked must be called with i.mu held.
func (i *Intake) currentLocked() State {
	if i.state == Cooldown && !i.clock.Now().Before(i.cooldownUntil) {
		i.state = Idle
	}

	return i.state
}

func (i *Intake) ignored(reason string) {
	if i.metrics != nil {
		i.metrics.IncScanIgnored(reason)
	}
	i.logger.Debug("Scan ignored", slog.String("reason", reason))
}
