package commands

import (
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)

	// ErrEmptyCart is returned when checkout finds no resolvable cart lines.
	// An order is never created in that case.
	ErrEmptyCart = errors.New("cart has no resolvable items")
)

// CheckoutCommand represents a request to convert a session cart into a
// persisted order owned by the customer, with prices frozen at this instant.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	sessionID  string
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command.
// Validates the order id, session id and customer id.
func NewCheckoutCommand(orderID kernel.UUID, sessionID string, customerID kernel.UUID) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSessionID(sessionID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SessionID returns the session whose cart is being checked out.
func (c CheckoutCommand) SessionID() string {
	return c.sessionID
}

// CustomerID returns the customer who will own the order.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}
	c.sessionID = sessionID
	return nil
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
