package queries

import (
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/guard"
)

var ErrRestaurantMenuQueryIsNotConstructed = errors.New(
	"RestaurantMenuQuery must be created via NewRestaurantMenuQuery constructor",
)

// RestaurantMenuQuery retrieves one restaurant's menu for the detail page.
type RestaurantMenuQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestaurantMenuQuery creates a query for a restaurant's menu.
func NewRestaurantMenuQuery(restaurantID kernel.UUID) (RestaurantMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return RestaurantMenuQuery{}, err
	}
	return RestaurantMenuQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q RestaurantMenuQuery) Validate() error {
	return q.guard.Validate(ErrRestaurantMenuQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose menu is listed.
func (q RestaurantMenuQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// RestaurantMenuQueryResponse is the restaurant header plus its menu items.
type RestaurantMenuQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Items []MenuListItem
}

// MenuListItem represents one orderable dish on the menu page.
type MenuListItem struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Price
}
