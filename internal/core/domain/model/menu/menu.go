// Package menu provides the catalog read models: restaurants and the menu
// items they serve. The lifecycle core never mutates the catalog; it only
// resolves menu items to their current price at cart and checkout time.
package menu

import (
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/errs"
	"mealdash/internal/pkg/guard"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created via NewMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

	// ErrRestaurantIsNotConstructed is returned when a Restaurant was not created via NewRestaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

	// ErrNameIsRequired is returned for an empty restaurant or menu item name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// MenuItem is a catalog entry: a dish offered by a restaurant at its current
// price. Orders freeze this price into their lines at creation; the catalog
// value may change afterwards without affecting them.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        kernel.Price

	guard guard.ConstructorGuard
}

// NewMenuItem creates a catalog entry with validation.
func NewMenuItem(id, restaurantID kernel.UUID, name string, price kernel.Price) (MenuItem, error) {
	item := MenuItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setRestaurantID(restaurantID),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return MenuItem{}, err
	}

	return item, nil
}

// Validate ensures the MenuItem was created through NewMenuItem.
func (m MenuItem) Validate() error {
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the menu item's unique identifier.
func (m MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the owning restaurant's identifier.
func (m MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the dish name.
func (m MenuItem) Name() string {
	return m.name
}

// Price returns the current catalog price.
func (m MenuItem) Price() kernel.Price {
	return m.price
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	m.restaurantID = restaurantID
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

// Restaurant is a catalog entry for a place customers browse.
type Restaurant struct {
	id      kernel.UUID
	ownerID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant read model with validation.
func NewRestaurant(id, ownerID kernel.UUID, name string) (Restaurant, error) {
	r := Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOwnerID(ownerID),
		r.setName(name),
	); err != nil {
		return Restaurant{}, err
	}

	return r, nil
}

// Validate ensures the Restaurant was created through NewRestaurant.
func (r Restaurant) Validate() error {
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's unique identifier.
func (r Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the owning principal's identifier.
func (r Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Name returns the restaurant name.
func (r Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	r.ownerID = ownerID
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}
