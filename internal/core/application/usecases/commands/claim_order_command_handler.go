package commands

import (
	"context"

	"mealdash/internal/core/domain/model/order"
	"mealdash/internal/core/domain/model/principal"
)

// ClaimOrderCommandHandler handles a driver claiming a Pending order.
//
// The claim is exactly-once: the domain transition is re-checked by the
// repository's compare-and-set write, so two drivers racing for the same
// order resolve to one winner and one rejection no-op. Rejections of any
// kind (wrong role, already claimed, not Pending) leave the order untouched
// and are reported through the returned Outcome, never as errors.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim. Returns the transition outcome; an error is
// returned only for unknown orders or infrastructure failures.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (order.Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if cmd.ActorRole() != principal.RoleDriver {
		return order.OutcomeRejectedNotActor, nil
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

	outcome, err := o.Claim(cmd.DriverID())
	if err != nil {
		return 0, err
	}
	if !outcome.Applied() {
		return outcome, nil
	}

	won, err := orderRepo.UpdateClaim(ctx, o)
	if err != nil {
		return 0, err
	}
	if !won {
		// a concurrent claim committed first
		return order.OutcomeRejectedNotClaimable, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return order.OutcomeApplied, nil
}
