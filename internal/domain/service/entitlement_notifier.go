package service

import (
	"time"

	"github.com/google/uuid"
)

// EntitlementChange tells observers that a user's subscription rows changed.
// Observers re-read the current entitlement; the change carries no state.
type EntitlementChange struct {
	UserID     uuid.UUID
	ObservedAt time.Time
}

// EntitlementNotifier lets callers observe entitlement changes per user.
type EntitlementNotifier interface {
	// Subscribe registers fn for changes of userID and returns a function that removes it.
	Subscribe(userID uuid.UUID, fn func(EntitlementChange)) (unsubscribe func())
}
