// Package session provides the in-memory session cart store. Carts are
// keyed by session id and live until the session's TTL runs out; the cron
// janitor sweeps expired entries.
package session

import (
	"context"
	"sync"
	"time"

	"mealdash/internal/core/domain/model/cart"
	"mealdash/internal/pkg/errs"
)

// ErrTTLIsInvalid indicates a non-positive session TTL.
var ErrTTLIsInvalid = errs.NewValueIsInvalidError("ttl")

type entry struct {
	cart     *cart.Cart
	deadline time.Time
}

// InMemoryCartStore implements ports.CartStore with a mutex-guarded map.
// Each Save refreshes the session's deadline; the session model assumes a
// single writer per session, so the mutex only protects the map itself.
type InMemoryCartStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewInMemoryCartStore creates a cart store whose sessions expire after ttl.
func NewInMemoryCartStore(ttl time.Duration) (*InMemoryCartStore, error) {
	if ttl <= 0 {
		return nil, ErrTTLIsInvalid
	}
	return &InMemoryCartStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

// Get returns the session's cart, creating an empty one on first touch.
// An expired cart counts as absent.
func (s *InMemoryCartStore) Get(_ context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.RLock()
	e, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if ok && s.now().Before(e.deadline) {
		return e.cart, nil
	}

	return cart.NewCart(sessionID)
}

// Save stores the cart under its session and refreshes the deadline.
func (s *InMemoryCartStore) Save(_ context.Context, c *cart.Cart) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[c.SessionID()] = entry{
		cart:     c,
		deadline: s.now().Add(s.ttl),
	}
	return nil
}

// Clear empties the session's cart.
func (s *InMemoryCartStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// PruneExpired removes every cart whose deadline is at or before now.
// Returns the number of carts removed.
func (s *InMemoryCartStore) PruneExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for sessionID, e := range s.entries {
		if !now.Before(e.deadline) {
			delete(s.entries, sessionID)
			pruned++
		}
	}
	return pruned
}
