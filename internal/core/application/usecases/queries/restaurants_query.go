package queries

import (
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/guard"
)

var ErrRestaurantsQueryIsNotConstructed = errors.New(
	"RestaurantsQuery must be created via NewRestaurantsQuery constructor",
)

// RestaurantsQuery retrieves every restaurant for the browse page.
type RestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewRestaurantsQuery creates a parameterless query for the restaurant list.
func NewRestaurantsQuery() RestaurantsQuery {
	return RestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q RestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrRestaurantsQueryIsNotConstructed)
}

// RestaurantsQueryResponse represents one restaurant in the browse list.
type RestaurantsQueryResponse struct {
	ID   kernel.UUID
	Name string
}
