package impl

import (
	"context"

	"perks/internal/domain/clock"
	"perks/internal/domain/entity"
	domainerrors "perks/internal/domain/errors"
	"perks/internal/domain/repository"
	"perks/internal/domain/service"
	"perks/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type entitlementService struct {
	store           repository.RedemptionStore
	entitlementRepo repository.EntitlementRepository
	notifier        service.EntitlementNotifier
	clock           clock.Clock
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	Store           repository.RedemptionStore
	EntitlementRepo repository.EntitlementRepository
	Notifier        service.EntitlementNotifier `optional:"true"`
	Clock           clock.Clock
}

// NewEntitlementService creates a new entitlement service instance
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	clk := params.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &entitlementService{
		store:           params.Store,
		entitlementRepo: params.EntitlementRepo,
		notifier:        params.Notifier,
		clock:           clk,
	}
}

// GetCurrentEntitlement retrieves the entitlement that currently grants redemption rights
func (s *entitlementService) GetCurrentEntitlement(ctx context.Context, session entity.Session) (*entity.Entitlement, error) {
	entitlement, err := s.store.FindActiveEntitlement(ctx, session.UserID, s.clock.Now())
	if err != nil {
		if errors.Is(err, repository.ErrEntitlementNotFound) {
			return nil, domainerrors.ErrEntitlementNotFound
		}

		return nil, errors.Wrap(err, "failed to find active entitlement")
	}

	return entitlement, nil
}

// ListEntitlements retrieves the acting user's subscription history
func (s *entitlementService) ListEntitlements(ctx context.Context, session entity.Session) ([]*entity.Entitlement, error) {
	entitlements, err := s.entitlementRepo.FindByUser(ctx, session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find entitlements by user")
	}

	return entitlements, nil
}

// WatchEntitlement registers fn for change notifications of userID
func (s *entitlementService) WatchEntitlement(userID uuid.UUID, fn func(service.EntitlementChange)) func() {
	if s.notifier == nil {
		return func() {}
	}

	return s.notifier.Subscribe(userID, fn)
}
