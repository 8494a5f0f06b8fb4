// Package services provides domain services that implement business logic
// spanning the order aggregate and external catalog data.
//
// The package includes:
//   - OrderPricer: converts requested menu items into priced order line items,
//     snapshotting catalog names and prices at order time
//
// Domain services coordinate between aggregates and lookup ports, implementing
// business logic that doesn't naturally belong to a single aggregate root.
package services
