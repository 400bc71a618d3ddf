package queries

import (
	"context"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DriverStatsQueryHandler aggregates a driver's Delivered orders in SQL.
type DriverStatsQueryHandler struct {
	db *gorm.DB
}

// NewDriverStatsQueryHandler creates a handler for the driver-stats projection.
func NewDriverStatsQueryHandler(db *gorm.DB) DriverStatsQueryHandler {
	return DriverStatsQueryHandler{db: db}
}

// Handle returns the count and summed value of the driver's Delivered orders.
// A driver with no completed deliveries gets a zero count and zero earnings.
func (h DriverStatsQueryHandler) Handle(
	ctx context.Context,
	query DriverStatsQuery,
) (DriverStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverStatsQueryResponse{}, err
	}

	var completedCount int
	var earnings decimal.Decimal

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total_price), 0)
		FROM orders
		WHERE driver_id = ? AND status = ?
	`, query.DriverID().Bytes(), order.Delivered).Row()

	if err := row.Scan(&completedCount, &earnings); err != nil {
		return DriverStatsQueryResponse{}, err
	}

	price, err := kernel.NewPrice(earnings)
	if err != nil {
		return DriverStatsQueryResponse{}, err
	}

	return DriverStatsQueryResponse{
		CompletedCount: completedCount,
		Earnings:       price,
	}, nil
}
