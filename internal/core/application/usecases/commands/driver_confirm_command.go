package commands

import (
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/guard"
)

var ErrDriverConfirmCommandIsNotConstructed = errors.New(
	"DriverConfirmCommand must be created via NewDriverConfirmCommand constructor",
)

// DriverConfirmCommand represents the claiming driver acknowledging that the
// order was handed to the customer. One half of the dual confirmation.
type DriverConfirmCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDriverConfirmCommand creates a driver confirmation command.
func NewDriverConfirmCommand(orderID, driverID kernel.UUID) (DriverConfirmCommand, error) {
	cmd := DriverConfirmCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return DriverConfirmCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DriverConfirmCommand) Validate() error {
	return c.guard.Validate(ErrDriverConfirmCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c DriverConfirmCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the confirming driver's identifier.
func (c DriverConfirmCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *DriverConfirmCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DriverConfirmCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
