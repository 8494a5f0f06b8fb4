package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates on
// the command side. List and count reads go through the query handlers
// directly and are not part of this port.
type OrderRepository interface {
	// Add persists a new order aggregate, including its line items, in a
	// single insert. The order must be valid and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Only the
	// mutable fields (status, delivery estimate, updated-at) can change
	// after creation; line items are immutable.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its line items by identifier.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
