package queries

import (
	"context"

	"mealdash/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantsQueryHandler reads the restaurant list.
type RestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewRestaurantsQueryHandler creates a handler for the restaurant list projection.
func NewRestaurantsQueryHandler(db *gorm.DB) RestaurantsQueryHandler {
	return RestaurantsQueryHandler{db: db}
}

// Handle returns all restaurants sorted by name.
func (h RestaurantsQueryHandler) Handle(
	ctx context.Context,
	query RestaurantsQuery,
) ([]RestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurants := make([]RestaurantsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM restaurants
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string

		if err = rows.Scan(&id, &name); err != nil {
			return nil, err
		}

		restaurantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		restaurants = append(restaurants, RestaurantsQueryResponse{
			ID:   restaurantID,
			Name: name,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
