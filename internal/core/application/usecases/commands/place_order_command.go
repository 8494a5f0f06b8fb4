package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemsAreRequired  = errors.New("at least one order item is required")
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// OrderItemRequest is one requested order line as received from the caller:
// a menu item reference, a quantity, and an optional per-item note.
type OrderItemRequest struct {
	MenuItemID          kernel.UUID
	Quantity            int
	SpecialInstructions string
}

// PlaceOrderCommand represents a request to place a new food order for a user
// against a restaurant. The delivery address and both instruction fields are
// optional; everything else is validated by the constructor.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(userID, restaurantID,
//	    []OrderItemRequest{{MenuItemID: pizzaID, Quantity: 2}},
//	    "123 Main Street", "ring twice")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	userID              kernel.UUID
	restaurantID        kernel.UUID
	items               []OrderItemRequest
	deliveryAddress     string
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that both identifiers are valid, the item list is not empty, each
// requested item references a valid menu item id, and every quantity is a
// positive integer. Returns an error if any validation fails.
func NewPlaceOrderCommand(
	userID kernel.UUID,
	restaurantID kernel.UUID,
	items []OrderItemRequest,
	deliveryAddress string,
	specialInstructions string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		deliveryAddress:     deliveryAddress,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// UserID returns the identifier of the account placing the order.
func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// RestaurantID returns the identifier of the restaurant ordered from.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns the requested order lines in request order.
func (c PlaceOrderCommand) Items() []OrderItemRequest {
	items := make([]OrderItemRequest, len(c.items))
	copy(items, c.items)
	return items
}

// DeliveryAddress returns the optional delivery address.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// SpecialInstructions returns the optional order-level instructions.
func (c PlaceOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

// itemRequests maps the command's lines to the pricing service's input type,
// preserving request order.
func (c PlaceOrderCommand) itemRequests() []services.ItemRequest {
	requests := make([]services.ItemRequest, len(c.items))
	for i, item := range c.items {
		requests[i] = services.ItemRequest{
			MenuItemID:          item.MenuItemID,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		}
	}
	return requests
}

func (c *PlaceOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []OrderItemRequest) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: got %d for item %s", ErrQuantityIsInvalid, item.Quantity, item.MenuItemID)
		}
	}
	c.items = make([]OrderItemRequest, len(items))
	copy(c.items, items)
	return nil
}
