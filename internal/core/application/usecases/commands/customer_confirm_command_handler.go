package commands

import (
	"context"

	"mealdash/internal/core/domain/model/order"
)

// CustomerConfirmCommandHandler records the customer half of the dual
// confirmation. Matches the driver variant, except ownership is the only
// guard: the source behavior lets a customer confirm even before the order
// is claimed, and the completion check still only fires once both halves
// are present.
type CustomerConfirmCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCustomerConfirmCommandHandler creates a handler for customer confirmations.
func NewCustomerConfirmCommandHandler(uowFactory OrderUoWFactory) CustomerConfirmCommandHandler {
	return CustomerConfirmCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation. Returns the transition outcome; a
// non-owner is a rejection no-op.
func (h *CustomerConfirmCommandHandler) Handle(
	ctx context.Context,
	cmd CustomerConfirmCommand,
) (order.Outcome, error) {
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

	outcome, err := o.ConfirmByCustomer(cmd.CustomerID())
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
