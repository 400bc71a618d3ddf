package commands

import (
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/guard"
)

var ErrToggleDriverAvailabilityCommandIsNotConstructed = errors.New(
	"ToggleDriverAvailabilityCommand must be created via NewToggleDriverAvailabilityCommand constructor",
)

// ToggleDriverAvailabilityCommand flips a driver's availability flag.
// Availability only controls whether the driver's dashboard surfaces
// claimable orders; it never blocks a claim.
type ToggleDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleDriverAvailabilityCommand creates a toggle command.
func NewToggleDriverAvailabilityCommand(driverID kernel.UUID) (ToggleDriverAvailabilityCommand, error) {
	cmd := ToggleDriverAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDriverID(driverID); err != nil {
		return ToggleDriverAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrToggleDriverAvailabilityCommandIsNotConstructed)
}

// DriverID returns the driver whose availability flips.
func (c ToggleDriverAvailabilityCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *ToggleDriverAvailabilityCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
