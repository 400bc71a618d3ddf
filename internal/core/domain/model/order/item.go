package order

import (
	"errors"
	"fmt"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/errs"
	"mealdash/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is an order line: a menu item reference, the purchased quantity, and the
// menu item's price frozen at the instant the order was created. The frozen
// price decouples historical orders from later catalog price changes.
//
// Items are immutable once created and only exist inside an Order aggregate.
type Item struct {
	menuItemID  kernel.UUID
	quantity    int
	priceAtTime kernel.Price

	guard guard.ConstructorGuard
}

// NewItem creates an order line with validation.
// Quantity must be at least 1 and the price must be a constructed, non-negative
// Price.
func NewItem(menuItemID kernel.UUID, quantity int, priceAtTime kernel.Price) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setPriceAtTime(priceAtTime),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem and its fields are consistent.
func (i Item) Validate() error {
	if err := i.guard.Validate(ErrItemIsNotConstructed); err != nil {
		return err
	}

	return errors.Join(
		i.menuItemID.Validate(),
		i.priceAtTime.Validate(),
	)
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the purchased quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// PriceAtTime returns the unit price frozen at order creation.
func (i Item) PriceAtTime() kernel.Price {
	return i.priceAtTime
}

// Subtotal returns priceAtTime multiplied by quantity.
func (i Item) Subtotal() kernel.Price {
	return i.priceAtTime.MulQuantity(i.quantity)
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPriceAtTime(priceAtTime kernel.Price) error {
	if err := priceAtTime.Validate(); err != nil {
		return err
	}
	i.priceAtTime = priceAtTime
	return nil
}
