package commands

import (
	"context"

	"mealdash/internal/core/domain/model/order"
)

// DriverConfirmCommandHandler records the driver half of the dual
// confirmation. The completion check runs inside the domain transition, so a
// confirm that supplies the second acknowledgement also moves the order to
// Delivered within the same transaction.
type DriverConfirmCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDriverConfirmCommandHandler creates a handler for driver confirmations.
func NewDriverConfirmCommandHandler(uowFactory OrderUoWFactory) DriverConfirmCommandHandler {
	return DriverConfirmCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation. Returns the transition outcome; a
// mismatched actor or a non-Delivering order is a rejection no-op.
func (h *DriverConfirmCommandHandler) Handle(ctx context.Context, cmd DriverConfirmCommand) (order.Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	outcome, err := o.ConfirmByDriver(cmd.DriverID())
	if err != nil {
		return 0, err
	}
	if !outcome.Applied() {
		return outcome, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return outcome, nil
}
