// Package realtime fans entitlement changes out to in-process observers.
package realtime

import (
	"sync"

	"perks/internal/domain/service"

	"github.com/google/uuid"
)

type subscriber struct {
	id uint64
	fn func(service.EntitlementChange)
}

// Hub implements service.EntitlementNotifier.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uuid.UUID][]subscriber
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID][]subscriber)}
}

// Subscribe registers fn for changes of userID. The returned function is idempotent.
func (h *Hub) Subscribe(userID uuid.UUID, fn func(service.EntitlementChange)) func() {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs[userID] = append(h.subs[userID], subscriber{id: id, fn: fn})
	h.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() { h.remove(userID, id) })
	}
}

func (h *Hub) remove(userID uuid.UUID, id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.subs[userID]
	for i, sub := range subs {
		if sub.id == id {
			subs = append(subs[:i:i], subs[i+1:]...)

			break
		}
	}
	if len(subs) == 0 {
		delete(h.subs, userID)

		return
	}
	h.subs[userID] = subs
}

// Publish calls every observer of change.UserID. Callbacks run outside the lock.
func (h *Hub) Publish(change service.EntitlementChange) {
	h.mu.RLock()
	subs := h.subs[change.UserID]
	h.mu.RUnlock()

	for _, sub := range subs {
		sub.fn(change)
	}
}

// Subscribers returns the number of observers of userID.
func (h *Hub) Subscribers(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs[userID])
}
