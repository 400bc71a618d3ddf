package queries

import (
	"context"
	"time"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DriverDeliveriesQueryHandler reads a driver's undelivered orders.
type DriverDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewDriverDeliveriesQueryHandler creates a handler for the active-deliveries projection.
func NewDriverDeliveriesQueryHandler(db *gorm.DB) DriverDeliveriesQueryHandler {
	return DriverDeliveriesQueryHandler{db: db}
}

// Handle returns the driver's orders that are not yet Delivered, oldest first.
func (h DriverDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query DriverDeliveriesQuery,
) ([]DriverDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]DriverDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			total_price,
			driver_confirmed,
			customer_confirmed,
			created_at
		FROM orders
		WHERE driver_id = ? AND status != ?
		ORDER BY created_at
	`, query.DriverID().Bytes(), order.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var totalPrice decimal.Decimal
		var driverConfirmed, customerConfirmed bool
		var createdAt time.Time

		if err = rows.Scan(&id, &totalPrice, &driverConfirmed, &customerConfirmed, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		price, priceErr := kernel.NewPrice(totalPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		deliveries = append(deliveries, DriverDeliveriesQueryResponse{
			ID:                orderID,
			TotalPrice:        price,
			DriverConfirmed:   driverConfirmed,
			CustomerConfirmed: customerConfirmed,
			CreatedAt:         createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
