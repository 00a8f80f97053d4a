package service

import (
	"context"
	"time"
)

// RedemptionLocker serialises redemption attempts that share a key.
type RedemptionLocker interface {
	// TryLock attempts to take the lock without waiting.
	// ok is false when another holder has it; token identifies this holder.
	TryLock(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)

	// Release frees the lock if token still holds it.
	Release(ctx context.Context, key, token string) error
}
