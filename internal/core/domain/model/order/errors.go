package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is the sentinel wrapped by every InvalidTransitionError.
	// Callers branch on it with errors.Is.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCannotCancelDelivered is returned by Cancel for delivered orders.
	ErrCannotCancelDelivered = errors.New("cannot cancel a delivered order")

	// ErrAlreadyCancelled is returned by Cancel for orders already cancelled.
	ErrAlreadyCancelled = errors.New("order is already cancelled")
)

// InvalidTransitionError reports an attempt to move an order between two
// statuses that the transition table does not connect.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given states.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
