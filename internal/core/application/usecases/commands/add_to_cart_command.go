package commands

import (
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/errs"
	"mealdash/internal/pkg/guard"
)

var (
	ErrAddToCartCommandIsNotConstructed = errors.New(
		"AddToCartCommand must be created via NewAddToCartCommand constructor",
	)
	ErrSessionIDIsRequired = errs.NewValueIsRequiredError("session id")
)

// AddToCartCommand represents a request to add one unit of a menu item to the
// session cart. Adding an item already in the cart increments its quantity.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	sessionID  string
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to put a menu item into a session cart.
// Validates that the session id is present and the menu item id is valid.
func NewAddToCartCommand(sessionID string, menuItemID kernel.UUID) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setMenuItemID(menuItemID),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// SessionID returns the owning session's identifier.
func (c AddToCartCommand) SessionID() string {
	return c.sessionID
}

// MenuItemID returns the menu item to add.
func (c AddToCartCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c *AddToCartCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}
	c.sessionID = sessionID
	return nil
}

func (c *AddToCartCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	c.menuItemID = menuItemID
	return nil
}
