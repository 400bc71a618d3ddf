package commands

import (
	"context"

	"mealdash/internal/core/ports"
)

// AddToCartCommandHandler handles the business logic for growing a session cart.
// The menu item must resolve against the live catalog before it is stored;
// an unknown id surfaces as an errs.ObjectNotFoundError rather than a silent
// cart entry that can never check out.
type AddToCartCommandHandler struct {
	catalog   ports.CatalogLookup
	cartStore ports.CartStore
}

// NewAddToCartCommandHandler creates a handler for cart additions.
func NewAddToCartCommandHandler(catalog ports.CatalogLookup, cartStore ports.CartStore) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		catalog:   catalog,
		cartStore: cartStore,
	}
}

// Handle processes the cart addition.
// Resolves the menu item, then increments its quantity in the session cart by 1.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.catalog.Resolve(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	c, err := h.cartStore.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if err = c.AddItem(cmd.MenuItemID()); err != nil {
		return err
	}

	return h.cartStore.Save(ctx, c)
}
