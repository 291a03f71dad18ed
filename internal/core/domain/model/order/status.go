package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions (one step per tick, no conditions):
//
//	Received ──> Preparing ──> Baking ──> OutForDelivery ──> Delivered ─┐
//	                                                             ^      │
//	                                                             └──────┘
//	                                                          (terminal)
//
// Every order follows the same path regardless of its age, fulfillment type or
// payment state. Delivered is the only terminal state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status of a placed order.
	Received

	// Preparing means the kitchen has picked the order up.
	Preparing

	// Baking means the product is in the oven.
	Baking

	// OutForDelivery means the order has left the kitchen.
	// Pickup orders pass through this state as well.
	OutForDelivery

	// Delivered is the terminal state; feedback can be recorded only here.
	Delivered
)

// Lifecycle lists the valid statuses in forward order, terminal last.
var Lifecycle = []Status{Received, Preparing, Baking, OutForDelivery, Delivered}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Received:       "Received",
		Preparing:      "Preparing",
		Baking:         "Baking",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

// Validate checks that the status is one of the lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s < Received || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It is safe to call on any value and returns "Unknown" for invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus is the inverse of String for valid statuses.
func ParseStatus(s string) (Status, error) {
	for _, status := range Lifecycle {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether no further transition exists.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next is the lifecycle transition function. It is total and pure: every
// non-terminal status has exactly one successor, Delivered maps to itself,
// and anything outside the lifecycle maps to Unknown.
//
// Example:
//
//	s := order.Received
//	for range 4 {
//	    s = s.Next()
//	}
//	fmt.Println(s)        // Delivered
//	fmt.Println(s.Next()) // Delivered
func (s Status) Next() Status {
	switch s {
	case Received:
		return Preparing
	case Preparing:
		return Baking
	case Baking:
		return OutForDelivery
	case OutForDelivery:
		return Delivered
	case Delivered:
		return Delivered
	case Unknown:
		return Unknown
	default:
		return Unknown
	}
}

// ValidateAdvance checks that moving from s to next is exactly one forward step.
//
// Returns:
//   - nil when next == s.Next() and s is not terminal
//   - InvalidStateError when s is terminal or not a lifecycle state
//   - ValueIsInvalidError when next skips, repeats or reverses a step
func (s Status) ValidateAdvance(next Status) error {
	if err := s.Validate(); err != nil {
		return errs.NewInvalidStateErrorWithCause("order status", err)
	}

	if s.IsTerminal() {
		return errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is terminal", s),
		)
	}

	if next != s.Next() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not the successor of %s", next, s),
		)
	}

	return nil
}
