// Package order provides domain entities and business logic for order
// management in the food delivery system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning identity, line items, totals, and lifecycle
//   - OrderItem: A priced line item snapshot from the catalog at order time
//   - Status: A table-driven state machine enforcing valid status transitions
//
// Key business rules:
//   - Orders must reference a valid user and restaurant and carry at least one item
//   - Total amount always equals the sum of line item subtotals
//   - Status follows Pending -> Confirmed -> Preparing -> OutForDelivery -> Delivered,
//     with Cancelled reachable from the first three states only
//   - Delivered and Cancelled are terminal; no transition leaves them
//   - Each legal transition recomputes the delivery estimate from a fixed
//     offset keyed by the target status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
