// Package ports defines the contracts between the application core and
// infrastructure adapters: repositories, the catalog lookup, the session cart
// store and the unit of work. These interfaces enable dependency inversion
// and testability.
package ports

import (
	"context"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored atomically with its full set of line items; items are
// immutable and only ever removed by cascading order deletion.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate's lifecycle state
	// (status, driver, confirmations). Items are never updated.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateClaim persists a driver claim with a compare-and-set: the write
	// succeeds only while the stored row is still Pending with no driver.
	// Returns (false, nil) when a concurrent claim won the race; the caller
	// must treat that as a rejection no-op.
	UpdateClaim(ctx context.Context, aggregate *order.Order) (bool, error)

	// Get retrieves an order aggregate with its items by unique identifier.
	// Inside a unit of work transaction the read holds the order row until
	// commit, so concurrent lifecycle transitions on the same order serialize.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
