package order

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// Fulfillment is how the customer receives the order.
type Fulfillment int

const (
	// UnknownFulfillment is the invalid zero value.
	UnknownFulfillment Fulfillment = iota

	// Pickup orders are collected at the counter and carry no address.
	Pickup

	// Delivery orders carry a non-empty delivery address.
	Delivery
)

// PickupDestination is what notifications show for orders without an address.
const PickupDestination = "Pickup"

func (f Fulfillment) String() string {
	switch f {
	case Pickup:
		return "Pickup"
	case Delivery:
		return "Delivery"
	case UnknownFulfillment:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Validate rejects UnknownFulfillment and out-of-range values.
func (f Fulfillment) Validate() error {
	if f != Pickup && f != Delivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"fulfillment is invalid",
			fmt.Errorf("%d is not a valid fulfillment type", f),
		)
	}
	return nil
}

// ParseFulfillment accepts "pickup" or "delivery" in any case.
func ParseFulfillment(s string) (Fulfillment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pickup":
		return Pickup, nil
	case "delivery":
		return Delivery, nil
	default:
		return UnknownFulfillment, errs.NewValueIsInvalidErrorWithCause(
			"fulfillment is invalid",
			fmt.Errorf("%q is not pickup or delivery", s),
		)
	}
}
