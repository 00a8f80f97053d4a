package realtime

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"perks/internal/domain/clock"
	"perks/internal/domain/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const (
	minReconnectDelay = 500 * time.Millisecond
	maxReconnectDelay = 30 * time.Second
)

// Listener turns Postgres NOTIFY payloads on a channel into hub publications.
// The payload is the affected user's id.
type Listener struct {
	pool    *pgxpool.Pool
	channel string
	hub     *Hub
	clock   clock.Clock
	logger  *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func NewListener(pool *pgxpool.Pool, channel string, hub *Hub, clk clock.Clock, logger *slog.Logger) *Listener {
	return &Listener{
		pool:    pool,
		channel: channel,
		hub:     hub,
		clock:   clk,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Start runs the listen loop until Stop. Connection failures are retried with backoff.
func (l *Listener) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(context.WithoutCancel(ctx))

	go func() {
		defer close(l.done)

		delay := minReconnectDelay
		for {
			err := l.listen(ctx)
			if ctx.Err() != nil {
				return
			}
			l.logger.Warn("Entitlement listener disconnected, retrying",
				slog.String("channel", l.channel),
				slog.Duration("delay", delay),
				slog.Any("error", err),
			)

			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			delay = min(delay*2, maxReconnectDelay)
		}
	}()
}

// Stop ends the listen loop and waits for it to exit.
func (l *Listener) Stop() {
	l.once.Do(func() {
		if l.cancel == nil {
			close(l.done)

			return
		}
		l.cancel()
	})
	<-l.done
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return errors.Wrap(err, "acquire listen connection")
	}
	// The connection carries LISTEN state, so it must not go back to the pool.
	pgConn := conn.Hijack()
	defer pgConn.Close(context.WithoutCancel(ctx))

	if _, err := pgConn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return errors.Wrap(err, "listen")
	}
	l.logger.Info("Listening for entitlement changes", slog.String("channel", l.channel))

	for {
		notification, err := pgConn.WaitForNotification(ctx)
		if err != nil {
			return errors.Wrap(err, "wait for notification")
		}
		l.handle(notification.Payload)
	}
}

func (l *Listener) handle(payload string) {
	userID, err := uuid.Parse(strings.TrimSpace(payload))
	if err != nil {
		l.logger.Warn("Ignoring entitlement notification with invalid payload",
			slog.String("payload", payload),
		)

		return
	}

	l.hub.Publish(service.EntitlementChange{
		UserID:     userID,
		ObservedAt: l.clock.Now(),
	})
}
