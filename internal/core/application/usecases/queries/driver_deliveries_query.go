package queries

import (
	"errors"
	"time"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/guard"
)

var ErrDriverDeliveriesQueryIsNotConstructed = errors.New(
	"DriverDeliveriesQuery must be created via NewDriverDeliveriesQuery constructor",
)

// DriverDeliveriesQuery retrieves a driver's in-flight deliveries: claimed
// orders that have not reached Delivered yet.
type DriverDeliveriesQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDriverDeliveriesQuery creates a query for a driver's active deliveries.
func NewDriverDeliveriesQuery(driverID kernel.UUID) (DriverDeliveriesQuery, error) {
	if err := driverID.Validate(); err != nil {
		return DriverDeliveriesQuery{}, err
	}
	return DriverDeliveriesQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q DriverDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrDriverDeliveriesQueryIsNotConstructed)
}

// DriverID returns the driver whose deliveries are listed.
func (q DriverDeliveriesQuery) DriverID() kernel.UUID {
	return q.driverID
}

// DriverDeliveriesQueryResponse represents one in-flight delivery, with the
// confirmation flags so the dashboard can show which half is still missing.
type DriverDeliveriesQueryResponse struct {
	ID                kernel.UUID
	TotalPrice        kernel.Price
	DriverConfirmed   bool
	CustomerConfirmed bool
	CreatedAt         time.Time
}
