package menurepo

import (
	"context"
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/domain/model/menu"
	"mealdash/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalog implements ports.CatalogLookup over the catalog tables.
// Reads run outside any unit of work: the catalog is reference data for the
// order flow, not an aggregate it owns.
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a catalog backed by GORM.
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// Resolve returns the menu item for the given identifier.
func (c *GormCatalog) Resolve(ctx context.Context, menuItemID kernel.UUID) (menu.MenuItem, error) {
	if err := menuItemID.Validate(); err != nil {
		return menu.MenuItem{}, err
	}

	var dto MenuItemDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", menuItemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return menu.MenuItem{}, errs.NewObjectNotFoundError("menu item", menuItemID.String())
		}
		return menu.MenuItem{}, err
	}

	return menuItemToDomain(dto)
}

// AddRestaurant persists a restaurant. Catalog management has no write flow
// in this service; this exists for fixtures and external seed scripts.
func (c *GormCatalog) AddRestaurant(ctx context.Context, restaurant menu.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(restaurant)
	return c.db.WithContext(ctx).Create(&dto).Error
}

// AddMenuItem persists a menu item under an existing restaurant. Like
// AddRestaurant, only fixtures and seed scripts write through this.
func (c *GormCatalog) AddMenuItem(ctx context.Context, item menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	return c.db.WithContext(ctx).Create(&dto).Error
}
