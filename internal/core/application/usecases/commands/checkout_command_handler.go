package commands

import (
	"context"
	"errors"

	"mealdash/internal/core/domain/model/cart"
	"mealdash/internal/core/domain/model/order"
	"mealdash/internal/core/ports"
	"mealdash/internal/pkg/errs"
)

// CheckoutCommandHandler converts a session cart into a persisted order.
//
// Each cart line is resolved against the live catalog and frozen into an
// order item at the current price. Lines whose menu item no longer resolves
// are skipped rather than failing the whole checkout, mirroring the cart's
// tolerance for stale entries. If nothing resolves, no order is created and
// ErrEmptyCart is returned.
//
// The order and all of its items are persisted in one transaction; the cart
// is cleared only after that transaction commits.
type CheckoutCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogLookup
	cartStore  ports.CartStore
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogLookup,
	cartStore ports.CartStore,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		cartStore:  cartStore,
	}
}

// Handle processes the checkout command and returns the created order.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := h.cartStore.Get(ctx, cmd.SessionID())
	if err != nil {
		return nil, err
	}

	items, err := h.buildItems(ctx, c.Entries())
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), items)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.cartStore.Clear(ctx, cmd.SessionID()); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// buildItems freezes resolvable cart lines into order items.
// Unresolvable menu items are dropped; any other catalog failure aborts.
func (h *CheckoutCommandHandler) buildItems(
	ctx context.Context,
	entries []cart.Entry,
) ([]order.Item, error) {
	items := make([]order.Item, 0, len(entries))

	for _, entry := range entries {
		menuItem, err := h.catalog.Resolve(ctx, entry.MenuItemID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return nil, err
		}

		item, err := order.NewItem(menuItem.ID(), entry.Quantity(), menuItem.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
