package entity

import (
	"time"

	"github.com/google/uuid"
)

// Entitlement is a paid subscription that grants a user the right to redeem discounts.
type Entitlement struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Plan      string    `json:"plan"`
	Active    bool      `json:"active"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

// CoversAt reports whether the entitlement grants redemption rights at t.
func (e *Entitlement) CoversAt(t time.Time) bool {
	return e != nil && e.Active && !e.EndDate.Before(t)
}
