package lock

import (
	"context"
	"sync"
	"time"

	"perks/internal/domain/clock"
	"perks/internal/domain/service"

	"github.com/google/uuid"
)

type heldLock struct {
	token     string
	expiresAt time.Time
}

// localLocker is an in-process RedemptionLocker for single-instance deployments.
type localLocker struct {
	mu    sync.Mutex
	clock clock.Clock
	held  map[string]heldLock
}

// NewLocalLocker creates a RedemptionLocker that only serialises callers in this process.
func NewLocalLocker(clk clock.Clock) service.RedemptionLocker {
	if clk == nil {
		clk = clock.New()
	}

	return &localLocker{
		clock: clk,
		held:  make(map[string]heldLock),
	}
}

func (l *localLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if err := validate(key, ttl); err != nil {
		return "", false, err
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if current, ok := l.held[key]; ok && now.Before(current.expiresAt) {
		return "", false, nil
	}

	token := uuid.NewString()
	l.held[key] = heldLock{token: token, expiresAt: now.Add(ttl)}

	return token, true, nil
}

func (l *localLocker) Release(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if current, ok := l.held[key]; ok && current.token == token {
		delete(l.held, key)
	}

	return nil
}
