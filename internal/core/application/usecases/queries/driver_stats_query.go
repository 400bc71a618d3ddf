package queries

import (
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/guard"
)

var ErrDriverStatsQueryIsNotConstructed = errors.New(
	"DriverStatsQuery must be created via NewDriverStatsQuery constructor",
)

// DriverStatsQuery retrieves a driver's lifetime delivery statistics:
// how many orders they completed and how much those orders were worth.
type DriverStatsQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDriverStatsQuery creates a query for a driver's completed-delivery stats.
func NewDriverStatsQuery(driverID kernel.UUID) (DriverStatsQuery, error) {
	if err := driverID.Validate(); err != nil {
		return DriverStatsQuery{}, err
	}
	return DriverStatsQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q DriverStatsQuery) Validate() error {
	return q.guard.Validate(ErrDriverStatsQueryIsNotConstructed)
}

// DriverID returns the driver whose stats are computed.
func (q DriverStatsQuery) DriverID() kernel.UUID {
	return q.driverID
}

// DriverStatsQueryResponse aggregates a driver's Delivered orders.
type DriverStatsQueryResponse struct {
	CompletedCount int
	Earnings       kernel.Price
}
