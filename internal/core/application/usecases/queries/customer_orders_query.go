package queries

import (
	"errors"
	"time"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/domain/model/order"
	"mealdash/internal/pkg/guard"
)

var ErrCustomerOrdersQueryIsNotConstructed = errors.New(
	"CustomerOrdersQuery must be created via NewCustomerOrdersQuery constructor",
)

// pastOrdersLimit caps the past-orders section of the customer dashboard.
const pastOrdersLimit = 5

// CustomerOrdersQuery retrieves a customer's dashboard: every active order
// plus the five most recent delivered ones.
type CustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCustomerOrdersQuery creates a query for a customer's orders.
func NewCustomerOrdersQuery(customerID kernel.UUID) (CustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return CustomerOrdersQuery{}, err
	}
	return CustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q CustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CustomerOrdersQueryResponse splits the customer's orders into the active
// section and the capped past section, both newest first.
type CustomerOrdersQueryResponse struct {
	Active []CustomerOrder
	Past   []CustomerOrder
}

// CustomerOrder represents one order row on the customer dashboard.
type CustomerOrder struct {
	ID                kernel.UUID
	Status            order.Status
	TotalPrice        kernel.Price
	CustomerConfirmed bool
	CreatedAt         time.Time
}
