package service

import (
	"context"
	"time"
)

// RedemptionEvent is published after a redemption has been committed
type RedemptionEvent struct {
	RequestID       string    `json:"request_id,omitempty"` // For distributed tracing
	EventType       string    `json:"event_type"`
	RedemptionID    string    `json:"redemption_id"`
	UserID          string    `json:"user_id"`
	VendorID        string    `json:"vendor_id"`
	DiscountApplied string    `json:"discount_applied"`
	RedemptionDay   string    `json:"redemption_day"`
	RedeemedAt      time.Time `json:"redeemed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRedemptionEvent publishes a committed redemption for async processing
	PublishRedemptionEvent(ctx context.Context, event *RedemptionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
