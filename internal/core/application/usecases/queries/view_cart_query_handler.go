package queries

import (
	"context"
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/ports"
	"mealdash/internal/pkg/errs"
)

// ViewCartQueryHandler prices a session cart against the live catalog.
// Unlike the database-backed projections, the cart lives in the session
// store, so the handler reads through the ports rather than raw SQL.
type ViewCartQueryHandler struct {
	catalog   ports.CatalogLookup
	cartStore ports.CartStore
}

// NewViewCartQueryHandler creates a handler for cart views.
func NewViewCartQueryHandler(catalog ports.CatalogLookup, cartStore ports.CartStore) ViewCartQueryHandler {
	return ViewCartQueryHandler{
		catalog:   catalog,
		cartStore: cartStore,
	}
}

// Handle resolves each cart entry and prices it at the current catalog
// price. Entries whose menu item no longer resolves are dropped from the
// view; any other catalog failure aborts.
func (h ViewCartQueryHandler) Handle(ctx context.Context, query ViewCartQuery) (ViewCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ViewCartQueryResponse{}, err
	}

	c, err := h.cartStore.Get(ctx, query.SessionID())
	if err != nil {
		return ViewCartQueryResponse{}, err
	}

	resp := ViewCartQueryResponse{
		Lines: make([]CartLine, 0, len(c.Entries())),
		Total: kernel.ZeroPrice(),
	}

	for _, entry := range c.Entries() {
		menuItem, resolveErr := h.catalog.Resolve(ctx, entry.MenuItemID())
		if resolveErr != nil {
			if errors.Is(resolveErr, errs.ErrObjectNotFound) {
				continue
			}
			return ViewCartQueryResponse{}, resolveErr
		}

		subtotal := menuItem.Price().MulQuantity(entry.Quantity())
		resp.Lines = append(resp.Lines, CartLine{
			MenuItemID: menuItem.ID(),
			Name:       menuItem.Name(),
			Quantity:   entry.Quantity(),
			UnitPrice:  menuItem.Price(),
			Subtotal:   subtotal,
		})
		resp.Total = resp.Total.Add(subtotal)
	}

	return resp, nil
}
