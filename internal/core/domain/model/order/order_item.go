package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
// through the NewOrderItem factory method.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a priced line item owned by exactly one Order. The name and
// unit price are snapshots of the catalog's menu item taken when the order
// was placed and never change afterwards, even if the catalog item does.
// This is intentional price pinning, not a cache of the catalog.
//
// OrderItem is immutable after construction; the parent Order exclusively
// owns its items and no item is shared outside its parent.
type OrderItem struct { //nolint:recvcheck //using for validation
	menuItemID          kernel.UUID
	name                string
	price               decimal.Decimal
	quantity            int
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewOrderItem creates a line item snapshotting the given menu item data.
//
// Validation rules:
//   - menuItemID must be a valid UUID
//   - name must not be empty
//   - price must not be negative
//   - quantity must be a positive integer
func NewOrderItem(
	menuItemID kernel.UUID,
	name string,
	price decimal.Decimal,
	quantity int,
	specialInstructions string,
) (OrderItem, error) {
	item := OrderItem{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewOrderItem.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// MenuItemID returns the catalog identifier this item was priced from.
// It is a reference, not a live binding: the catalog item may have changed
// or disappeared since the order was placed.
func (i OrderItem) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item name captured at order time.
func (i OrderItem) Name() string {
	return i.name
}

// Price returns the unit price captured at order time.
func (i OrderItem) Price() decimal.Decimal {
	return i.price
}

// Quantity returns how many units of the menu item were ordered.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// SpecialInstructions returns the optional per-item note ("no onions").
func (i OrderItem) SpecialInstructions() string {
	return i.specialInstructions
}

// Subtotal returns unit price multiplied by quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *OrderItem) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *OrderItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	i.name = name
	return nil
}

func (i *OrderItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	i.price = price
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
