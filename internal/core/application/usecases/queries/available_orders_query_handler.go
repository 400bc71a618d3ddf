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

// AvailableOrdersQueryHandler reads claimable orders straight from the
// orders table. The projection runs outside any unit of work: a claim
// racing against it is resolved later by the conditional claim write,
// not by this read.
type AvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewAvailableOrdersQueryHandler creates a handler for the claimable-orders projection.
func NewAvailableOrdersQueryHandler(db *gorm.DB) AvailableOrdersQueryHandler {
	return AvailableOrdersQueryHandler{db: db}
}

// Handle returns all Pending orders without a driver, oldest first.
func (h AvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query AvailableOrdersQuery,
) ([]AvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]AvailableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			total_price,
			created_at
		FROM orders
		WHERE status = ? AND driver_id IS NULL
		ORDER BY created_at
	`, order.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var totalPrice decimal.Decimal
		var createdAt time.Time

		if err = rows.Scan(&id, &totalPrice, &createdAt); err != nil {
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

		orders = append(orders, AvailableOrdersQueryResponse{
			ID:         orderID,
			TotalPrice: price,
			CreatedAt:  createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
