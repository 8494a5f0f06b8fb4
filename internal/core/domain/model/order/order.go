package order

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderItemsAreRequired is returned when an order is created with no line items.
	// An order with zero items is never persisted; creation fails first.
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
)

// initialEtaOffset is the fixed delivery estimate applied at placement.
// It is not computed from distance or restaurant load.
const initialEtaOffset = 30 * time.Minute

// Order is the aggregate root for a placed food order. It exclusively owns its
// OrderItem collection and drives the status state machine.
//
// Order maintains these invariants:
//   - user and restaurant identifiers are valid UUIDs
//   - the item list is never empty and preserves insertion order
//   - total amount always equals the sum of item subtotals
//   - status transitions only follow the table in Status
//   - orders are never deleted, only transitioned to a terminal status
//
// The struct uses private fields to ensure encapsulation and can only be
// created through NewOrder (placement) or RestoreOrder (persistence).
type Order struct {
	id           kernel.UUID
	userID       kernel.UUID
	restaurantID kernel.UUID

	items []OrderItem

	deliveryAddress     string
	specialInstructions string

	status                Status
	totalAmount           decimal.Decimal
	estimatedDeliveryTime time.Time
	createdAt             time.Time
	updatedAt             time.Time

	isConstructed bool
}

// NewOrder assembles a new order aggregate at placement time.
//
// The order starts in Pending status with an estimated delivery time of
// creation time plus 30 minutes, and its total amount is computed as the sum
// of each item's unit price times quantity. Delivery address and special
// instructions are optional.
//
// Returns an error if any identifier is invalid, any item was not constructed
// properly, or the item list is empty.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	items []OrderItem,
	deliveryAddress string,
	specialInstructions string,
) (*Order, error) {
	now := time.Now().UTC()

	o := &Order{
		deliveryAddress:       deliveryAddress,
		specialInstructions:   specialInstructions,
		status:                Pending,
		estimatedDeliveryTime: now.Add(initialEtaOffset),
		createdAt:             now,
		updatedAt:             now,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.totalAmount = o.calculateTotalAmount()
	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// The stored total amount is trusted as-is; it was computed by NewOrder when
// the aggregate was first persisted and the item set never changes afterwards.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	items []OrderItem,
	deliveryAddress string,
	specialInstructions string,
	status Status,
	totalAmount decimal.Decimal,
	estimatedDeliveryTime time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		deliveryAddress:       deliveryAddress,
		specialInstructions:   specialInstructions,
		totalAmount:           totalAmount,
		estimatedDeliveryTime: estimatedDeliveryTime,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the account that placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// RestaurantID returns the identifier of the restaurant the order targets.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns the order's line items in insertion order.
// The returned slice is a copy; the aggregate keeps exclusive ownership.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// DeliveryAddress returns the optional delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// SpecialInstructions returns the optional order-level instructions.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the order total: the sum of each item's unit price
// multiplied by its quantity.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// EstimatedDeliveryTime returns the current delivery estimate.
func (o *Order) EstimatedDeliveryTime() time.Time {
	return o.estimatedDeliveryTime
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus transitions the order to target if the transition table allows
// it, and recomputes the delivery estimate as a fixed offset from now keyed by
// the target status (Confirmed +30m, Preparing +20m, OutForDelivery +15m;
// Delivered and Cancelled leave the estimate unchanged).
//
// Returns an InvalidTransitionError if the transition is not legal, including
// any attempt to leave a terminal state. The aggregate is unchanged on error.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if offset, ok := newStatus.etaOffset(); ok {
		o.estimatedDeliveryTime = time.Now().UTC().Add(offset)
	}
	o.updatedAt = time.Now().UTC()
	return nil
}

// Cancel transitions the order to Cancelled with distinguishable pre-checks:
// a delivered order fails with ErrCannotCancelDelivered and an already
// cancelled order fails with ErrAlreadyCancelled. Any other state follows the
// regular transition rules.
func (o *Order) Cancel() error {
	switch o.status {
	case Delivered:
		return ErrCannotCancelDelivered
	case Cancelled:
		return ErrAlreadyCancelled
	default:
		return o.ChangeStatus(Cancelled)
	}
}

// calculateTotalAmount sums the subtotals of all line items.
func (o *Order) calculateTotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]OrderItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
