// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order row carries the lifecycle state; its line items
// live in a child table and are written once at checkout, never updated.
package orderrepo

import (
	"time"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer and driver for the dashboard projections.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;index"`
	DriverID          *uuid.UUID      `gorm:"type:uuid;index"`
	Status            int             `gorm:"index"`
	TotalPrice        decimal.Decimal `gorm:"type:numeric(12,2)"`
	DriverConfirmed   bool
	CustomerConfirmed bool
	CreatedAt         time.Time
	Items             []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one frozen order line.
// price_at_time is the unit price captured at checkout.
type OrderItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index"`
	MenuItemID  uuid.UUID       `gorm:"type:uuid"`
	Quantity    int
	PriceAtTime decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// Line item rows get fresh synthetic ids; the domain identifies items only
// by position within their order.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:          uuid.New(),
			OrderID:     aggregate.ID().Bytes(),
			MenuItemID:  item.MenuItemID().Bytes(),
			Quantity:    item.Quantity(),
			PriceAtTime: item.PriceAtTime().Decimal(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		DriverID:          driverID,
		Status:            int(aggregate.Status()),
		TotalPrice:        aggregate.TotalPrice().Decimal(),
		DriverConfirmed:   aggregate.DriverConfirmed(),
		CustomerConfirmed: aggregate.CustomerConfirmed(),
		CreatedAt:         aggregate.CreatedAt(),
		Items:             items,
	}
}

// toDomain converts a database DTO to an order aggregate via RestoreOrder,
// which re-checks the lifecycle and total invariants on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	totalPrice, err := kernel.NewPrice(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		priceAtTime, priceErr := kernel.NewPrice(itemDTO.PriceAtTime)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(menuItemID, itemDTO.Quantity, priceAtTime)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		driverID,
		order.Status(dto.Status),
		totalPrice,
		dto.DriverConfirmed,
		dto.CustomerConfirmed,
		dto.CreatedAt,
		items,
	)
}
