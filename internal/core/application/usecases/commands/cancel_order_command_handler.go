package commands

import (
	"context"
	"fmt"
)

// CancelOrderCommandHandler cancels orders that have not yet finished.
//
// Cancellation is sugar over the regular Cancelled transition with an explicit
// pre-check in the aggregate: a delivered order and an already cancelled order
// each fail with their own distinguishable message, both surfaced here as
// ErrInvalidOrder. An unknown order id yields the repository's not-found error.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, cancels it through the aggregate, and persists the
// result. The stored order is unchanged on any failure.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
