package queries

import (
	"errors"
	"time"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/guard"
)

var ErrAvailableOrdersQueryIsNotConstructed = errors.New(
	"AvailableOrdersQuery must be created via NewAvailableOrdersQuery constructor",
)

// AvailableOrdersQuery retrieves the orders a driver can claim: Pending
// status with no driver attached. Oldest first, so the longest-waiting
// order surfaces at the top of the dashboard.
type AvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewAvailableOrdersQuery creates a parameterless query for claimable orders.
func NewAvailableOrdersQuery() AvailableOrdersQuery {
	return AvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q AvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrAvailableOrdersQueryIsNotConstructed)
}

// AvailableOrdersQueryResponse represents one claimable order.
type AvailableOrdersQueryResponse struct {
	ID         kernel.UUID
	TotalPrice kernel.Price
	CreatedAt  time.Time
}
