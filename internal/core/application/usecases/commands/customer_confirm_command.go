package commands

import (
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/guard"
)

var ErrCustomerConfirmCommandIsNotConstructed = errors.New(
	"CustomerConfirmCommand must be created via NewCustomerConfirmCommand constructor",
)

// CustomerConfirmCommand represents the order's owner acknowledging receipt.
// The other half of the dual confirmation.
type CustomerConfirmCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCustomerConfirmCommand creates a customer confirmation command.
func NewCustomerConfirmCommand(orderID, customerID kernel.UUID) (CustomerConfirmCommand, error) {
	cmd := CustomerConfirmCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CustomerConfirmCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CustomerConfirmCommand) Validate() error {
	return c.guard.Validate(ErrCustomerConfirmCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c CustomerConfirmCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the confirming customer's identifier.
func (c CustomerConfirmCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *CustomerConfirmCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CustomerConfirmCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
