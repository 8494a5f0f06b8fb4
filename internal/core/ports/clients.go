package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// RestaurantStatus is the catalog service's restaurant state.
// Only active restaurants accept new orders.
type RestaurantStatus string

const (
	RestaurantActive    RestaurantStatus = "ACTIVE"
	RestaurantInactive  RestaurantStatus = "INACTIVE"
	RestaurantSuspended RestaurantStatus = "SUSPENDED"
)

// MenuItemStatus is the catalog service's menu item availability state.
// Only available items can be ordered.
type MenuItemStatus string

const (
	MenuItemAvailable   MenuItemStatus = "AVAILABLE"
	MenuItemUnavailable MenuItemStatus = "UNAVAILABLE"
	MenuItemOutOfStock  MenuItemStatus = "OUT_OF_STOCK"
)

// Account is the projection of a user account returned by the account service.
// The core resolves accounts on demand and never caches or persists them.
type Account struct {
	ID kernel.UUID
}

// Restaurant is the projection of a catalog restaurant used during placement.
type Restaurant struct {
	ID     kernel.UUID
	Name   string
	Status RestaurantStatus
}

// MenuItem is the projection of a catalog menu item used for pricing.
type MenuItem struct {
	ID     kernel.UUID
	Name   string
	Price  decimal.Decimal
	Status MenuItemStatus
}

// AccountClient is the read-only lookup port into the user service.
// Implementations return errs.ObjectNotFoundError when the account does not
// exist; any other error indicates an infrastructure failure. The orchestrator
// folds both into the same order-level validation error.
type AccountClient interface {
	GetAccount(ctx context.Context, userID kernel.UUID) (Account, error)
}

// CatalogClient is the read-only lookup port into the restaurant service.
// Implementations return errs.ObjectNotFoundError for missing restaurants or
// menu items. Lookups are per item; no batching is assumed.
type CatalogClient interface {
	GetRestaurant(ctx context.Context, restaurantID kernel.UUID) (Restaurant, error)
	GetMenuItem(ctx context.Context, restaurantID, itemID kernel.UUID) (MenuItem, error)
}
