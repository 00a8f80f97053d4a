package repository

import (
	"context"

	"perks/internal/domain/entity"

	"github.com/google/uuid"
)

// EntitlementRepository defines read access to a user's subscription history.
type EntitlementRepository interface {
	// FindByUser retrieves all entitlements of a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Entitlement, error)
}
