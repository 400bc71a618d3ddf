// Package cart provides the session shopping cart aggregate. A cart is
// ephemeral per-session state: a mapping of menu items to quantities that lives
// only until checkout converts it into an order (or the session expires).
package cart

import (
	"errors"
	"fmt"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/errs"
	"mealdash/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart was not created through NewCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrSessionIDIsRequired is returned when attempting to create a cart without a session.
	ErrSessionIDIsRequired = errs.NewValueIsRequiredError("session id")
)

// Entry is one cart line: a menu item reference and its accumulated quantity.
// Quantities are always at least 1; a cart never stores empty lines.
type Entry struct {
	menuItemID kernel.UUID
	quantity   int
}

// NewEntry creates a cart line, typically when rehydrating a stored cart.
func NewEntry(menuItemID kernel.UUID, quantity int) (Entry, error) {
	if err := menuItemID.Validate(); err != nil {
		return Entry{}, err
	}
	if quantity < 1 {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	return Entry{menuItemID: menuItemID, quantity: quantity}, nil
}

// MenuItemID returns the referenced menu item's identifier.
func (e Entry) MenuItemID() kernel.UUID {
	return e.menuItemID
}

// Quantity returns the accumulated quantity for the line.
func (e Entry) Quantity() int {
	return e.quantity
}

// Cart is the aggregate for one session's pending selection. Lines keep
// insertion order so snapshots are deterministic. The cart is single-writer
// per session; cross-session synchronization is the store's concern.
type Cart struct {
	sessionID string
	entries   []Entry

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart bound to a session.
func NewCart(sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, ErrSessionIDIsRequired
	}

	return &Cart{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart reconstructs a cart with its lines from the session store.
func RestoreCart(sessionID string, entries []Entry) (*Cart, error) {
	c, err := NewCart(sessionID)
	if err != nil {
		return nil, err
	}

	c.entries = make([]Entry, len(entries))
	copy(c.entries, entries)
	return c, nil
}

// Validate ensures the cart was created through its constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// SessionID returns the owning session's identifier.
func (c *Cart) SessionID() string {
	return c.sessionID
}

// AddItem increments the stored quantity for a menu item by 1, starting a new
// line at quantity 1 when the item is not in the cart yet. Whether the item
// actually exists in the catalog is the caller's concern; the cart itself only
// tracks identifiers.
func (c *Cart) AddItem(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	for i := range c.entries {
		if c.entries[i].menuItemID.IsEqual(menuItemID) {
			c.entries[i].quantity++
			return nil
		}
	}

	c.entries = append(c.entries, Entry{menuItemID: menuItemID, quantity: 1})
	return nil
}

// Entries returns a copy of the cart lines in insertion order.
func (c *Cart) Entries() []Entry {
	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Clear removes all lines. Called exactly once, after a successful checkout.
func (c *Cart) Clear() {
	c.entries = nil
}
