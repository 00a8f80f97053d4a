package realtime

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"perks/config"
	"perks/internal/domain/clock"
	"perks/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHub_PublishToUserOnly(t *testing.T) {
	hub := NewHub()
	alice, bob := uuid.New(), uuid.New()

	var mu sync.Mutex
	var got []uuid.UUID
	record := func(change service.EntitlementChange) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, change.UserID)
	}

	unsubscribe := hub.Subscribe(alice, record)
	hub.Subscribe(alice, record)

	hub.Publish(service.EntitlementChange{UserID: alice})
	hub.Publish(service.EntitlementChange{UserID: bob})
	assert.Equal(t, []uuid.UUID{alice, alice}, got)

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 1, hub.Subscribers(alice))

	hub.Publish(service.EntitlementChange{UserID: alice})
	assert.Len(t, got, 3)
}

func TestHub_UnsubscribeLastRemovesUser(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	unsubscribe := hub.Subscribe(userID, func(service.EntitlementChange) {})
	unsubscribe()

	assert.Equal(t, 0, hub.Subscribers(userID))
	assert.NotContains(t, hub.subs, userID)
}

func TestListener_Handle(t *testing.T) {
	hub := NewHub()
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	listener := NewListener(nil, "entitlement_changes", hub, clock.NewFakeClock(now), discardLogger())
	userID := uuid.New()

	var received []service.EntitlementChange
	hub.Subscribe(userID, func(change service.EntitlementChange) {
		received = append(received, change)
	})

	listener.handle(" " + userID.String() + "\n")
	listener.handle("not-a-uuid")

	require.Len(t, received, 1)
	assert.Equal(t, userID, received[0].UserID)
	assert.Equal(t, now, received[0].ObservedAt)
}

func TestListener_StopWithoutStart(t *testing.T) {
	listener := NewListener(nil, "c", NewHub(), clock.New(), discardLogger())

	listener.Stop()
	listener.Stop()
}

func TestNewEntitlementNotifier(t *testing.T) {
	notifier, err := NewEntitlementNotifier(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{},
		Clock:  clock.New(),
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &Hub{}, notifier)

	_, err = NewEntitlementNotifier(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Realtime: &config.RealtimeConfig{Enabled: true}},
		Clock:  clock.New(),
		Logger: discardLogger(),
	})
	assert.ErrorContains(t, err, "realtime dsn is required")

	_, err = NewEntitlementNotifier(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Realtime: &config.RealtimeConfig{Enabled: true, DSN: "://bad"}},
		Clock:  clock.New(),
		Logger: discardLogger(),
	})
	assert.ErrorContains(t, err, "parse realtime dsn")
}
