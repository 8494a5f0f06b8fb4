package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// PlaceOrderCommandHandler orchestrates order placement: account validation,
// restaurant validation, line-item pricing, and a single persistence call.
//
// The sequence is synchronous validate-then-commit with no compensation step:
// an account or catalog change occurring between validation and the local
// commit is not detected. This is a known, accepted consistency gap of the
// design, not something the handler tries to paper over. Placement carries no
// idempotency key either: two identical commands produce two distinct orders.
//
// Every precondition failure, including lookup infrastructure failures,
// surfaces as ErrInvalidOrder. Lookups are not retried.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	accounts   ports.AccountClient
	catalog    ports.CatalogClient
	pricer     services.OrderPricer
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a unit of work factory for transactional persistence and the
// account/catalog lookup clients for cross-service validation.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	accounts ports.AccountClient,
	catalog ports.CatalogClient,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		accounts:   accounts,
		catalog:    catalog,
		pricer:     services.NewOrderPricer(catalog),
	}
}

// Handle processes the placement command and returns the persisted aggregate
// with its assigned identifier.
//
// Steps:
//  1. Resolve the user; absence or lookup failure fails with ErrInvalidOrder.
//  2. Resolve the restaurant; absence or any status other than active fails
//     with ErrInvalidOrder.
//  3. Price the requested items; any pricing failure fails with ErrInvalidOrder.
//  4. Assemble the aggregate (Pending status, creation time + 30 minutes ETA,
//     total as the sum over line items).
//  5. Persist once inside a unit of work.
//
// Nothing is persisted unless every step succeeds; a failed placement leaves
// the store unchanged.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.accounts.GetAccount(ctx, cmd.UserID()); err != nil {
		return nil, fmt.Errorf("%w: unable to validate user %s: %w", ErrInvalidOrder, cmd.UserID(), err)
	}

	restaurant, err := h.catalog.GetRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, fmt.Errorf("%w: unable to validate restaurant %s: %w", ErrInvalidOrder, cmd.RestaurantID(), err)
	}
	if restaurant.Status != ports.RestaurantActive {
		return nil, fmt.Errorf("%w: restaurant is not available for orders", ErrInvalidOrder)
	}

	items, err := h.pricer.BuildItems(ctx, cmd.RestaurantID(), cmd.itemRequests())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.UserID(),
		cmd.RestaurantID(),
		items,
		cmd.DeliveryAddress(),
		cmd.SpecialInstructions(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
