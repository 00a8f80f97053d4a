package middleware

import (
	"sync"
	"time"

	"perks/config"
	"perks/internal/delivery/api/response"
	domainerrors "perks/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles requests per authenticated user.
type RateLimitMiddleware struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[uuid.UUID]*userLimiter
	lastGC   time.Time
	now      func() time.Time
}

// NewRateLimitMiddleware builds a limiter from config. A nil config or a
// non-positive rate disables throttling.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		limit:    rate.Inf,
		limiters: make(map[uuid.UUID]*userLimiter),
		now:      time.Now,
	}

	if cfg != nil && cfg.RateLimit != nil && cfg.RateLimit.RequestsPerMinute > 0 {
		m.limit = rate.Limit(cfg.RateLimit.RequestsPerMinute / 60)
		m.burst = max(cfg.RateLimit.Burst, 1)
	}

	return m
}

// Limit must run after Authenticate; unauthenticated requests pass through.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.limit == rate.Inf {
			return next(c)
		}

		session, ok := GetSession(c)
		if !ok {
			return next(c)
		}

		if !m.allow(session.UserID) {
			appErr := domainerrors.ErrTooManyRequests

			return response.TooManyRequests(c, appErr.ErrorCode(), appErr.Message())
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(userID uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastGC) > limiterIdleTTL {
		for id, l := range m.limiters {
			if now.Sub(l.lastSeen) > limiterIdleTTL {
				delete(m.limiters, id)
			}
		}
		m.lastGC = now
	}

	l, ok := m.limiters[userID]
	if !ok {
		l = &userLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.limiters[userID] = l
	}
	l.lastSeen = now

	return l.limiter.AllowN(now, 1)
}
