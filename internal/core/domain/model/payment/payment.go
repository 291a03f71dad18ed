// Package payment holds the payment method choice and the receipt produced at checkout.
// Payment instruments are never validated here; card details are checked by the
// presentation layer before checkout is requested.
package payment

import (
	"fmt"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Method is how the customer pays.
type Method int

const (
	UnknownMethod Method = iota
	CreditCard
	DebitCard
	Cash
)

// Methods lists the accepted methods in menu order.
var Methods = []Method{CreditCard, DebitCard, Cash}

func (m Method) String() string {
	switch m {
	case CreditCard:
		return "Credit Card"
	case DebitCard:
		return "Debit Card"
	case Cash:
		return "Cash"
	case UnknownMethod:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// RequiresCard is true for card payments.
func (m Method) RequiresCard() bool {
	return m == CreditCard || m == DebitCard
}

// Validate rejects UnknownMethod and out-of-range values.
func (m Method) Validate() error {
	if m < CreditCard || m > Cash {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// ParseMethod accepts the method names in any case, with or without spaces.
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, m := range Methods {
		if strings.ToLower(strings.ReplaceAll(m.String(), " ", "")) == key {
			return m, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not a valid payment method", s))
}

// Receipt is the outcome of a checkout. Amounts are listed in the order they were applied.
type Receipt struct {
	Reference       kernel.UUID
	OrderID         kernel.ID
	AccountID       kernel.ID
	Method          Method
	Subtotal        kernel.Money
	Promotion       string
	AfterPromotion  kernel.Money
	LoyaltyDiscount kernel.Money
	Total           kernel.Money
	PointsSpent     int64
	PointsBalance   int64
	PaidAt          time.Time
}

// PromotionApplied is true when a promotion reduced the subtotal.
func (r Receipt) PromotionApplied() bool {
	return r.Promotion != ""
}
