// Package menurepo provides persistence for the restaurant catalog and the
// CatalogLookup implementation the order flow resolves menu items through.
package menurepo

import (
	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO represents the database structure for restaurants.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
	Name    string
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents the database structure for menu items.
// price is the current catalog price; orders copy it at checkout.
type MenuItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;index"`
	Name         string
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func restaurantFromDomain(restaurant menu.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:      restaurant.ID().Bytes(),
		OwnerID: restaurant.OwnerID().Bytes(),
		Name:    restaurant.Name(),
	}
}

func menuItemFromDomain(item menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID().Bytes(),
		RestaurantID: item.RestaurantID().Bytes(),
		Name:         item.Name(),
		Price:        item.Price().Decimal(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return menu.MenuItem{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return menu.MenuItem{}, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return menu.MenuItem{}, err
	}

	return menu.NewMenuItem(id, restaurantID, dto.Name, price)
}
