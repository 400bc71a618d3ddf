package commands

import (
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/domain/model/principal"
	"mealdash/internal/pkg/errs"
	"mealdash/internal/pkg/guard"
)

var (
	ErrClaimOrderCommandIsNotConstructed = errors.New(
		"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
	)
	ErrRoleIsInvalid = errs.NewValueIsInvalidError("role")
)

// ClaimOrderCommand represents a driver asserting responsibility for
// delivering a Pending order. The acting principal's role travels with the
// command so the handler can reject non-driver claims before touching state.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	driverID  kernel.UUID
	actorRole principal.Role

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a claim command.
// Validates the order id, the claimant's id and that the role is a known value.
func NewClaimOrderCommand(
	orderID kernel.UUID,
	driverID kernel.UUID,
	actorRole principal.Role,
) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setActorRole(actorRole),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the claiming driver's identifier.
func (c ClaimOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// ActorRole returns the acting principal's role.
func (c ClaimOrderCommand) ActorRole() principal.Role {
	return c.actorRole
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *ClaimOrderCommand) setActorRole(actorRole principal.Role) error {
	if !actorRole.IsValid() {
		return ErrRoleIsInvalid
	}
	c.actorRole = actorRole
	return nil
}
