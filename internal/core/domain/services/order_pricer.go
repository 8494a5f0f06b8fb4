package services

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

var (
	// ErrMenuItemNotAvailable is returned when a requested menu item exists
	// but its catalog status does not allow ordering it.
	ErrMenuItemNotAvailable = errors.New("menu item is not available")
)

// MenuItemSource is the catalog capability the pricer needs: resolving one
// menu item of one restaurant. ports.CatalogClient satisfies it.
type MenuItemSource interface {
	GetMenuItem(ctx context.Context, restaurantID, itemID kernel.UUID) (ports.MenuItem, error)
}

// ItemRequest is one requested line of an order before pricing:
// which menu item, how many, and an optional note for the kitchen.
type ItemRequest struct {
	MenuItemID          kernel.UUID
	Quantity            int
	SpecialInstructions string
}

// OrderPricer is a domain service that converts requested (menu item,
// quantity, note) tuples into priced OrderItems by resolving each item
// through the catalog.
//
// Business rules:
//   - every requested item must resolve to an item of the given restaurant
//   - only items in Available status can be ordered
//   - the item's id, name, and unit price are snapshot into the line item
//   - output order matches request order
//   - pricing is all-or-nothing: one bad item discards the whole list
//
// The pricer performs one catalog lookup per requested item; correctness does
// not depend on batching.
type OrderPricer struct {
	catalog MenuItemSource
}

// NewOrderPricer creates a pricer resolving items through the given catalog source.
func NewOrderPricer(catalog MenuItemSource) OrderPricer {
	return OrderPricer{catalog: catalog}
}

// BuildItems prices the requested items against the restaurant's menu.
// Returns the priced line items in request order, or the first failure:
// a lookup error (missing item or catalog unreachable), an availability
// violation, or an item validation error (non-positive quantity).
// A partially built list is never returned.
func (p OrderPricer) BuildItems(
	ctx context.Context,
	restaurantID kernel.UUID,
	requests []ItemRequest,
) ([]order.OrderItem, error) {
	items := make([]order.OrderItem, 0, len(requests))

	for _, request := range requests {
		menuItem, err := p.catalog.GetMenuItem(ctx, restaurantID, request.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("unable to validate menu item %s: %w", request.MenuItemID, err)
		}

		if menuItem.Status != ports.MenuItemAvailable {
			return nil, fmt.Errorf("%w: %s", ErrMenuItemNotAvailable, menuItem.Name)
		}

		item, err := order.NewOrderItem(
			menuItem.ID,
			menuItem.Name,
			menuItem.Price,
			request.Quantity,
			request.SpecialInstructions,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
