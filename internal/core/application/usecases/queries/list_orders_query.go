package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersFilter narrows a ListOrdersQuery. All fields are optional and
// combine with AND: by user, by restaurant, by status, and by creation-time
// range (globally or scoped to a user/restaurant). A zero filter lists all
// orders.
type ListOrdersFilter struct {
	UserID       *kernel.UUID
	RestaurantID *kernel.UUID
	Status       *order.Status
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
}

// ListOrdersQuery retrieves orders matching a filter, ordered by creation time.
//
// Example:
//
//	status := order.Pending
//	query, err := NewListOrdersQuery(ListOrdersFilter{
//	    UserID: &userID,
//	    Status: &status,
//	})
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	filter ListOrdersFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a list query for the given filter.
// Any identifier or status present in the filter must be valid.
func NewListOrdersQuery(filter ListOrdersFilter) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setFilter(filter); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Filter returns the query's filter.
func (q ListOrdersQuery) Filter() ListOrdersFilter {
	return q.filter
}

func (q *ListOrdersQuery) setFilter(filter ListOrdersFilter) error {
	if filter.UserID != nil {
		if err := filter.UserID.Validate(); err != nil {
			return err
		}
	}
	if filter.RestaurantID != nil {
		if err := filter.RestaurantID.Validate(); err != nil {
			return err
		}
	}
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return err
		}
	}
	if filter.CreatedFrom != nil && filter.CreatedTo != nil && filter.CreatedTo.Before(*filter.CreatedFrom) {
		return errs.NewValueIsInvalidError("creation time range")
	}

	q.filter = filter
	return nil
}
