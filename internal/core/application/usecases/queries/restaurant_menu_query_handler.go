package queries

import (
	"context"
	"database/sql"
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RestaurantMenuQueryHandler reads one restaurant and its menu items.
type RestaurantMenuQueryHandler struct {
	db *gorm.DB
}

// NewRestaurantMenuQueryHandler creates a handler for the restaurant menu projection.
func NewRestaurantMenuQueryHandler(db *gorm.DB) RestaurantMenuQueryHandler {
	return RestaurantMenuQueryHandler{db: db}
}

// Handle returns the restaurant's name and menu items sorted by name.
// An unknown restaurant id yields an errs.ObjectNotFoundError.
func (h RestaurantMenuQueryHandler) Handle(
	ctx context.Context,
	query RestaurantMenuQuery,
) (RestaurantMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantMenuQueryResponse{}, err
	}

	var name string
	row := h.db.WithContext(ctx).Raw(`
		SELECT name FROM restaurants WHERE id = ?
	`, query.RestaurantID().Bytes()).Row()
	if err := row.Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RestaurantMenuQueryResponse{},
				errs.NewObjectNotFoundError("restaurant", query.RestaurantID())
		}
		return RestaurantMenuQueryResponse{}, err
	}

	resp := RestaurantMenuQueryResponse{
		ID:    query.RestaurantID(),
		Name:  name,
		Items: make([]MenuListItem, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM menu_items
		WHERE restaurant_id = ?
		ORDER BY name
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return RestaurantMenuQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var itemName string
		var amount decimal.Decimal

		if err = rows.Scan(&id, &itemName, &amount); err != nil {
			return RestaurantMenuQueryResponse{}, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return RestaurantMenuQueryResponse{}, idErr
		}

		price, priceErr := kernel.NewPrice(amount)
		if priceErr != nil {
			return RestaurantMenuQueryResponse{}, priceErr
		}

		resp.Items = append(resp.Items, MenuListItem{
			ID:    itemID,
			Name:  itemName,
			Price: price,
		})
	}

	if err = rows.Err(); err != nil {
		return RestaurantMenuQueryResponse{}, err
	}

	return resp, nil
}
