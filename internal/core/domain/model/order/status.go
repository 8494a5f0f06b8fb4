package order

import (
	"fmt"
	"time"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a table-driven transition map to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> OutForDelivery ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
// Status is a value object that validates state transitions and provides
// the wire names used by the REST layer and persistence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is placed.
	Pending

	// Confirmed indicates the restaurant accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// OutForDelivery indicates the order left the restaurant.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getAllowedTransitions returns the legal transition table: for each current
// status, the set of statuses an order may move to next. Terminal statuses
// map to an empty set.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled},
		Confirmed:      {Preparing, Cancelled},
		Preparing:      {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered},
		Delivered:      {},
		Cancelled:      {},
	}
}

// getEtaOffsets returns, keyed by target status, the offset from "now" used to
// recompute the estimated delivery time when a transition to that status
// succeeds. Statuses absent from the map leave the estimate unchanged.
func getEtaOffsets() map[Status]time.Duration {
	return map[Status]time.Duration{
		Confirmed:      30 * time.Minute,
		Preparing:      20 * time.Minute,
		OutForDelivery: 15 * time.Minute,
	}
}

// StatusFromString parses a wire name ("PENDING", "OUT_FOR_DELIVERY", ...)
// into a Status. Returns an error for unrecognized names; "UNKNOWN" is not
// accepted as it never denotes a valid stored state.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is one of the defined order states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getAllowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. It implements fmt.Stringer and
// is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is permitted from s.
func (s Status) IsTerminal() bool {
	next, ok := getAllowedTransitions()[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether moving from s to target appears in the
// legal transition table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the new status after a legal transition from s to
// target, or an InvalidTransitionError if the transition does not appear in
// the table (including any attempt to leave a terminal state).
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, NewInvalidTransitionError(s, target)
	}
	return target, nil
}

// etaOffset returns the delivery estimate offset for a transition into s,
// and whether the estimate should be recomputed at all.
func (s Status) etaOffset() (time.Duration, bool) {
	offset, ok := getEtaOffsets()[s]
	return offset, ok
}
