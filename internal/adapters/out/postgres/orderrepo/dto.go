// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexes for
// the common lookups by user, restaurant and status.
type OrderDTO struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID          uuid.UUID       `gorm:"type:uuid;index"`
	Status                int             `gorm:"index"`
	TotalAmount           decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryAddress       string
	SpecialInstructions   string
	EstimatedDeliveryTime time.Time
	CreatedAt             time.Time `gorm:"index"`
	UpdatedAt             time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single order line item row. The position column
// preserves the insertion order of items within their order.
type OrderItemDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID `gorm:"type:uuid;index"`
	Position            int
	MenuItemID          uuid.UUID       `gorm:"type:uuid"`
	Name                string          `gorm:"column:menu_item_name"`
	Price               decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity            int
	SpecialInstructions string
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Item rows get a fresh surrogate key; their identity within the aggregate is
// positional, not id-based.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:                  uuid.New(),
			OrderID:             aggregate.ID().Bytes(),
			Position:            i,
			MenuItemID:          item.MenuItemID().Bytes(),
			Name:                item.Name(),
			Price:               item.Price(),
			Quantity:            item.Quantity(),
			SpecialInstructions: item.SpecialInstructions(),
		})
	}

	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		UserID:                aggregate.UserID().Bytes(),
		RestaurantID:          aggregate.RestaurantID().Bytes(),
		Status:                int(aggregate.Status()),
		TotalAmount:           aggregate.TotalAmount(),
		DeliveryAddress:       aggregate.DeliveryAddress(),
		SpecialInstructions:   aggregate.SpecialInstructions(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
		Items:                 itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewOrderItem(
			menuItemID,
			itemDTO.Name,
			itemDTO.Price,
			itemDTO.Quantity,
			itemDTO.SpecialInstructions,
		)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		userID,
		restaurantID,
		items,
		dto.DeliveryAddress,
		dto.SpecialInstructions,
		order.Status(dto.Status),
		dto.TotalAmount,
		dto.EstimatedDeliveryTime,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
