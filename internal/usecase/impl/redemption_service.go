package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"perks/config"
	deliverycontext "perks/internal/delivery/context"
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
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100

	outcomeSuccess = "success"
	outcomeError   = "error"
)

type redemptionService struct {
	store          repository.RedemptionStore
	redemptionRepo repository.RedemptionRepository
	locker         service.RedemptionLocker
	publisher      service.EventPublisher
	metrics        service.RedemptionMetrics
	clock          clock.Clock
	location       *time.Location
	config         *config.RedemptionConfig
	logger         *slog.Logger
}

// RedemptionServiceParams holds dependencies for RedemptionService, injected by Fx.
type RedemptionServiceParams struct {
	fx.In

	Store          repository.RedemptionStore
	RedemptionRepo repository.RedemptionRepository
	Locker         service.RedemptionLocker  `optional:"true"`
	Publisher      service.EventPublisher    `optional:"true"`
	Metrics        service.RedemptionMetrics `optional:"true"`
	Clock          clock.Clock
	Config         *config.Config
	Logger         *slog.Logger
}

// NewRedemptionService creates a new redemption service instance
func NewRedemptionService(params RedemptionServiceParams) (usecase.RedemptionUsecase, error) {
	cfg := params.Config.Redemption
	if cfg == nil {
		return nil, errors.New("redemption config is required")
	}

	loc, err := cfg.Location()
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

	return &redemptionService{
		store:          params.Store,
		redemptionRepo: params.RedemptionRepo,
		locker:         params.Locker,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		clock:          clk,
		location:       loc,
		config:         cfg,
		logger:         logger,
	}, nil
}

// Validate resolves the vendor, then checks entitlement, then the daily duplicate rule.
func (s *redemptionService) Validate(ctx context.Context, session entity.Session, code string) (*usecase.ValidatedRedemption, error) {
	vendor, err := s.resolveVendor(ctx, code)
	if err != nil {
		return nil, err
	}

	return s.validateForVendor(ctx, session, vendor)
}

// Commit inserts exactly one redemption row for a validated attempt.
func (s *redemptionService) Commit(ctx context.Context, session entity.Session, validated *usecase.ValidatedRedemption) (*entity.Redemption, error) {
	if validated == nil || validated.Vendor == nil {
		return nil, domainerrors.NewRedemptionError(domainerrors.KindCommitFailed, domainerrors.StageCommit,
			errors.New("commit requires a validated redemption"))
	}
	if validated.UserID != session.UserID {
		return nil, domainerrors.NewRedemptionError(domainerrors.KindCommitFailed, domainerrors.StageCommit,
			errors.New("validated redemption belongs to another user"))
	}

	now := s.clock.Now()
	redemption := &entity.Redemption{
		ID:              uuid.New(),
		UserID:          session.UserID,
		VendorID:        validated.Vendor.ID,
		DiscountApplied: validated.Vendor.DiscountText,
		RedeemedAt:      now,
		RedemptionDay:   util.DayKey(now, s.location),
	}

	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.store.InsertRedemption(opCtx, redemption); err != nil {
		if errors.Is(err, repository.ErrDuplicateRedemption) {
			return nil, domainerrors.NewRedemptionError(domainerrors.KindAlreadyRedeemedToday, domainerrors.StageCommit, err)
		}

		s.loggerFrom(ctx).Error("Failed to insert redemption",
			slog.String("user_id", session.UserID.String()),
			slog.String("vendor_id", validated.Vendor.ID.String()),
			slog.Any("error", err))

		return nil, domainerrors.NewRedemptionError(domainerrors.KindCommitFailed, domainerrors.StageCommit, err)
	}

	return redemption, nil
}

// Redeem runs the full protocol for one scan and returns what the confirmation screen shows.
func (s *redemptionService) Redeem(ctx context.Context, session entity.Session, code string) (confirmation *usecase.Confirmation, err error) {
	started := time.Now()
	defer func() {
		s.observe(err, time.Since(started))
	}()

	vendor, err := s.resolveVendor(ctx, code)
	if err != nil {
		return nil, err
	}

	release, err := s.acquireLock(ctx, session.UserID, vendor.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	validated, err := s.validateForVendor(ctx, session, vendor)
	if err != nil {
		return nil, err
	}

	redemption, err := s.Commit(ctx, session, validated)
	if err != nil {
		return nil, err
	}

	s.publishRedeemed(ctx, redemption)

	s.loggerFrom(ctx).Info("Redemption committed",
		slog.String("redemption_id", redemption.ID.String()),
		slog.String("user_id", redemption.UserID.String()),
		slog.String("vendor_id", redemption.VendorID.String()),
		slog.String("redemption_day", redemption.RedemptionDay))

	return usecase.NewConfirmation(vendor, redemption), nil
}

// ListUserRedemptions retrieves the acting user's latest redemptions
func (s *redemptionService) ListUserRedemptions(ctx context.Context, session entity.Session, limit int) ([]*entity.Redemption, error) {
	redemptions, err := s.redemptionRepo.ListByUser(ctx, session.UserID, clampHistoryLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions by user")
	}

	return redemptions, nil
}

// resolveVendor is stage 1: the code must match exactly one active vendor.
func (s *redemptionService) resolveVendor(ctx context.Context, code string) (*entity.Vendor, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domainerrors.NewRedemptionError(domainerrors.KindInvalidCode, domainerrors.StageResolveVendor,
			errors.New("empty code"))
	}

	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	vendor, err := s.store.FindVendorByCode(opCtx, code)
	switch {
	case err == nil:
		return vendor, nil
	case errors.Is(err, repository.ErrVendorNotFound):
		return nil, domainerrors.NewRedemptionError(domainerrors.KindInvalidCode, domainerrors.StageResolveVendor, err)
	case errors.Is(err, repository.ErrVendorCodeAmbiguous):
		// Data-integrity problem: two active vendors share one storefront code.
		s.loggerFrom(ctx).Error("Vendor code resolves to multiple vendors", slog.Any("error", err))

		return nil, domainerrors.NewRedemptionError(domainerrors.KindInvalidCode, domainerrors.StageResolveVendor, err)
	default:
		s.loggerFrom(ctx).Warn("Vendor lookup failed", slog.Any("error", err))

		return nil, domainerrors.NewRedemptionError(domainerrors.KindBackendUnavailable, domainerrors.StageResolveVendor, err)
	}
}

// validateForVendor runs stages 2 and 3 against an already resolved vendor.
func (s *redemptionService) validateForVendor(ctx context.Context, session entity.Session, vendor *entity.Vendor) (*usecase.ValidatedRedemption, error) {
	now := s.clock.Now()

	entitlement, err := s.checkEntitlement(ctx, session.UserID, now)
	if err != nil {
		return nil, err
	}

	if err := s.checkDuplicate(ctx, session.UserID, vendor.ID, now); err != nil {
		return nil, err
	}

	return &usecase.ValidatedRedemption{
		UserID:      session.UserID,
		Vendor:      vendor,
		Entitlement: entitlement,
		ValidatedAt: now,
	}, nil
}

func (s *redemptionService) checkEntitlement(ctx context.Context, userID uuid.UUID, now time.Time) (*entity.Entitlement, error) {
	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	entitlement, err := s.store.FindActiveEntitlement(opCtx, userID, now)
	if err != nil {
		if errors.Is(err, repository.ErrEntitlementNotFound) {
			return nil, domainerrors.NewRedemptionError(domainerrors.KindNoEntitlement, domainerrors.StageCheckEntitlement, err)
		}
		s.loggerFrom(ctx).Warn("Entitlement lookup failed", slog.Any("error", err))

		return nil, domainerrors.NewRedemptionError(domainerrors.KindBackendUnavailable, domainerrors.StageCheckEntitlement, err)
	}

	return entitlement, nil
}

func (s *redemptionService) checkDuplicate(ctx context.Context, userID, vendorID uuid.UUID, now time.Time) error {
	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.store.FindRedemptionSince(opCtx, userID, vendorID, util.StartOfDay(now, s.location))
	switch {
	case err == nil:
		return domainerrors.NewRedemptionError(domainerrors.KindAlreadyRedeemedToday, domainerrors.StageCheckDuplicate, nil)
	case errors.Is(err, repository.ErrRedemptionNotFound):
		return nil
	default:
		s.loggerFrom(ctx).Warn("Redemption lookup failed", slog.Any("error", err))

		return domainerrors.NewRedemptionError(domainerrors.KindBackendUnavailable, domainerrors.StageCheckDuplicate, err)
	}
}

// acquireLock takes the per (user, vendor, day) lock, polling while another attempt holds it.
func (s *redemptionService) acquireLock(ctx context.Context, userID, vendorID uuid.UUID) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}

	key := fmt.Sprintf("redemption:%s:%s:%s", userID, vendorID, util.DayKey(s.clock.Now(), s.location))

	lockCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	for {
		token, ok, err := s.locker.TryLock(lockCtx, key, s.config.LockTTL)
		if err != nil {
			s.loggerFrom(ctx).Warn("Redemption lock failed", slog.String("key", key), slog.Any("error", err))

			return nil, domainerrors.NewRedemptionError(domainerrors.KindBackendUnavailable, domainerrors.StageAcquireLock, err)
		}
		if ok {
			return func() { s.releaseLock(ctx, key, token) }, nil
		}

		timer := time.NewTimer(s.config.LockRetryInterval)
		select {
		case <-lockCtx.Done():
			timer.Stop()

			return nil, domainerrors.NewRedemptionError(domainerrors.KindBackendUnavailable, domainerrors.StageAcquireLock,
				errors.Wrap(lockCtx.Err(), "timed out waiting for redemption lock"))
		case <-timer.C:
		}
	}
}

func (s *redemptionService) releaseLock(ctx context.Context, key, token string) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.OperationTimeout)
	defer cancel()

	if err := s.locker.Release(releaseCtx, key, token); err != nil {
		// The TTL frees the key eventually.
		s.loggerFrom(ctx).Warn("Failed to release redemption lock", slog.String("key", key), slog.Any("error", err))
	}
}

// publishRedeemed emits the redemption event; failures never fail the redemption.
func (s *redemptionService) publishRedeemed(ctx context.Context, redemption *entity.Redemption) {
	if s.publisher == nil {
		return
	}

	event := &service.RedemptionEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		EventType:       constants.EventTypeRedemptionCommitted,
		RedemptionID:    redemption.ID.String(),
		UserID:          redemption.UserID.String(),
		VendorID:        redemption.VendorID.String(),
		DiscountApplied: redemption.DiscountApplied,
		RedemptionDay:   redemption.RedemptionDay,
		RedeemedAt:      redemption.RedeemedAt,
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.OperationTimeout)
	defer cancel()

	if err := s.publisher.PublishRedemptionEvent(pubCtx, event); err != nil {
		s.loggerFrom(ctx).Error("Failed to publish redemption event",
			slog.String("redemption_id", event.RedemptionID),
			slog.Any("error", err))
	}
}

func (s *redemptionService) observe(err error, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}

	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
		var redemptionErr *domainerrors.RedemptionError
		if errors.As(err, &redemptionErr) {
			outcome = strings.ToLower(string(redemptionErr.Kind))
		}
	}

	s.metrics.ObserveRedemption(outcome, elapsed)
}

func (s *redemptionService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.config.OperationTimeout)
}

func (s *redemptionService) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func clampHistoryLimit(limit int) int {
	if limit <= 0 {
		return defaultHistoryLimit
	}

	return min(limit, maxHistoryLimit)
}
