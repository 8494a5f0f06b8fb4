package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCountOrdersQueryIsNotConstructed = errors.New(
	"CountOrdersQuery must be created via NewCountUserOrdersQuery or NewCountRestaurantOrdersQuery",
)

// CountOrdersQuery counts stored orders for one user or one restaurant.
type CountOrdersQuery struct { //nolint:recvcheck //using for validation
	userID       *kernel.UUID
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCountUserOrdersQuery creates a count query scoped to a user.
func NewCountUserOrdersQuery(userID kernel.UUID) (CountOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return CountOrdersQuery{}, err
	}
	return CountOrdersQuery{
		userID: &userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewCountRestaurantOrdersQuery creates a count query scoped to a restaurant.
func NewCountRestaurantOrdersQuery(restaurantID kernel.UUID) (CountOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return CountOrdersQuery{}, err
	}
	return CountOrdersQuery{
		restaurantID: &restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q CountOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersQueryIsNotConstructed)
}

// UserID returns the user scope, or nil when counting for a restaurant.
func (q CountOrdersQuery) UserID() *kernel.UUID {
	return q.userID
}

// RestaurantID returns the restaurant scope, or nil when counting for a user.
func (q CountOrdersQuery) RestaurantID() *kernel.UUID {
	return q.restaurantID
}
