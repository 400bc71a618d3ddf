package queries

import (
	"context"
	"database/sql"
	"time"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustomerOrdersQueryHandler reads a customer's orders for the dashboard.
type CustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCustomerOrdersQueryHandler creates a handler for the customer-orders projection.
func NewCustomerOrdersQueryHandler(db *gorm.DB) CustomerOrdersQueryHandler {
	return CustomerOrdersQueryHandler{db: db}
}

// Handle returns the customer's active orders (Pending or Delivering, newest
// first) and their five most recent Delivered orders.
func (h CustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query CustomerOrdersQuery,
) (CustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerOrdersQueryResponse{}, err
	}

	active, err := h.scanOrders(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			total_price,
			customer_confirmed,
			created_at
		FROM orders
		WHERE customer_id = ? AND status != ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes(), order.Delivered))
	if err != nil {
		return CustomerOrdersQueryResponse{}, err
	}

	past, err := h.scanOrders(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			total_price,
			customer_confirmed,
			created_at
		FROM orders
		WHERE customer_id = ? AND status = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, query.CustomerID().Bytes(), order.Delivered, pastOrdersLimit))
	if err != nil {
		return CustomerOrdersQueryResponse{}, err
	}

	return CustomerOrdersQueryResponse{Active: active, Past: past}, nil
}

func (h CustomerOrdersQueryHandler) scanOrders(tx *gorm.DB) ([]CustomerOrder, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func collectOrders(rows *sql.Rows) ([]CustomerOrder, error) {
	orders := make([]CustomerOrder, 0)

	for rows.Next() {
		var id uuid.UUID
		var status int
		var totalPrice decimal.Decimal
		var customerConfirmed bool
		var createdAt time.Time

		if err := rows.Scan(&id, &status, &totalPrice, &customerConfirmed, &createdAt); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		price, err := kernel.NewPrice(totalPrice)
		if err != nil {
			return nil, err
		}

		orders = append(orders, CustomerOrder{
			ID:                orderID,
			Status:            order.Status(status),
			TotalPrice:        price,
			CustomerConfirmed: customerConfirmed,
			CreatedAt:         createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
