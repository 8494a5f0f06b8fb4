// Package queries contains read-only operations over the order store.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response models, bypassing the
// aggregate and its unit of work.
package queries

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemResponse is the read model for one order line.
type OrderItemResponse struct {
	MenuItemID          kernel.UUID
	Name                string
	Price               decimal.Decimal
	Quantity            int
	SpecialInstructions string
}

// OrderResponse is the read model for a stored order, including its lines in
// insertion order.
type OrderResponse struct {
	ID                    kernel.UUID
	UserID                kernel.UUID
	RestaurantID          kernel.UUID
	Items                 []OrderItemResponse
	DeliveryAddress       string
	SpecialInstructions   string
	Status                order.Status
	TotalAmount           decimal.Decimal
	EstimatedDeliveryTime time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// orderRow maps the orders table for read queries.
type orderRow struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	RestaurantID          uuid.UUID
	DeliveryAddress       string
	SpecialInstructions   string
	Status                int
	TotalAmount           decimal.Decimal
	EstimatedDeliveryTime time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// orderItemRow maps the order_items table for read queries.
type orderItemRow struct {
	OrderID             uuid.UUID
	Position            int
	MenuItemID          uuid.UUID
	MenuItemName        string
	Price               decimal.Decimal
	Quantity            int
	SpecialInstructions string
}

func toOrderResponse(row orderRow, itemRows []orderItemRow) (OrderResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	userID, err := kernel.UUIDFromBytes(row.UserID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	restaurantID, err := kernel.UUIDFromBytes(row.RestaurantID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	items := make([]OrderItemResponse, 0, len(itemRows))
	for _, itemRow := range itemRows {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemRow.MenuItemID[:])
		if itemErr != nil {
			return OrderResponse{}, itemErr
		}
		items = append(items, OrderItemResponse{
			MenuItemID:          menuItemID,
			Name:                itemRow.MenuItemName,
			Price:               itemRow.Price,
			Quantity:            itemRow.Quantity,
			SpecialInstructions: itemRow.SpecialInstructions,
		})
	}

	return OrderResponse{
		ID:                    id,
		UserID:                userID,
		RestaurantID:          restaurantID,
		Items:                 items,
		DeliveryAddress:       row.DeliveryAddress,
		SpecialInstructions:   row.SpecialInstructions,
		Status:                order.Status(row.Status),
		TotalAmount:           row.TotalAmount,
		EstimatedDeliveryTime: row.EstimatedDeliveryTime,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}, nil
}
