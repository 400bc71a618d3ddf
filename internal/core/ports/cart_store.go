package ports

import (
	"context"

	"mealdash/internal/core/domain/model/cart"
)

// CartStore holds per-session carts for the session's lifetime. The store
// guarantees nothing beyond the session model: one writer per session, carts
// vanish when the session expires.
type CartStore interface {
	// Get returns the session's cart, creating an empty one on first touch.
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)

	// Save stores the cart under its session.
	Save(ctx context.Context, c *cart.Cart) error

	// Clear empties the session's cart. Called exactly once, after a
	// successful checkout.
	Clear(ctx context.Context, sessionID string) error
}
