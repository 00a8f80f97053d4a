package usecase

import (
	"context"

	"perks/internal/domain/entity"
	"perks/internal/domain/service"

	"github.com/google/uuid"
)

// EntitlementUsecase defines read access to subscription state
type EntitlementUsecase interface {
	// GetCurrentEntitlement retrieves the entitlement that currently grants redemption rights
	GetCurrentEntitlement(ctx context.Context, session entity.Session) (*entity.Entitlement, error)

	// ListEntitlements retrieves the acting user's subscription history
	ListEntitlements(ctx context.Context, session entity.Session) ([]*entity.Entitlement, error)

	// WatchEntitlement registers fn for change notifications of userID
	WatchEntitlement(userID uuid.UUID, fn func(service.EntitlementChange)) (unsubscribe func())
}
