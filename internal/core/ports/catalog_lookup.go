package ports

import (
	"context"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/domain/model/menu"
)

// CatalogLookup resolves menu item identifiers against the live catalog.
// This is the core's only view of the catalog: existence plus current price.
type CatalogLookup interface {
	// Resolve returns the menu item for the given identifier.
	// Returns an errs.ObjectNotFoundError when the id does not resolve.
	Resolve(ctx context.Context, menuItemID kernel.UUID) (menu.MenuItem, error)
}
