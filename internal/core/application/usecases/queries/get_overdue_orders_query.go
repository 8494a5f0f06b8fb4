package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery retrieves orders that are still in flight but whose
// estimated delivery time has already passed. Used by the monitoring job to
// surface deliveries running late.
type GetOverdueOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates a query for overdue orders.
// This is a parameterless query; "overdue" is evaluated against the database
// clock at execution time.
func NewGetOverdueOrdersQuery() GetOverdueOrdersQuery {
	return GetOverdueOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// GetOverdueOrdersQueryResponse represents one late order: enough information
// to identify the order, who is waiting, and how the order is currently held.
type GetOverdueOrdersQueryResponse struct {
	ID                    kernel.UUID
	UserID                kernel.UUID
	RestaurantID          kernel.UUID
	Status                order.Status
	EstimatedDeliveryTime time.Time
}
