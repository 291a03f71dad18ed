// Package promotion models flat seasonal discounts.
package promotion

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// ErrDescriptionIsRequired is returned when a promotion has no description.
var ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")

// Promotion takes a flat Discount off any amount of at least MinimumAmount.
// Promotions are seeded at startup and read-only afterwards.
type Promotion struct {
	description   string
	discount      kernel.Money
	minimumAmount kernel.Money
}

// NewPromotion validates a seeded promotion.
//
// Example:
//
//	p, _ := promotion.NewPromotion("$2 off on orders above $20", kernel.MustMoney(2), kernel.MustMoney(20))
func NewPromotion(description string, discount, minimumAmount kernel.Money) (Promotion, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Promotion{}, ErrDescriptionIsRequired
	}
	if discount.IsZero() {
		return Promotion{}, errs.NewValueIsInvalidErrorWithCause("discount", errors.New("must be greater than $0.00"))
	}
	return Promotion{description: description, discount: discount, minimumAmount: minimumAmount}, nil
}

func (p Promotion) Description() string {
	return p.description
}

func (p Promotion) Discount() kernel.Money {
	return p.discount
}

func (p Promotion) MinimumAmount() kernel.Money {
	return p.minimumAmount
}

// Qualifies reports whether amount reaches the minimum.
func (p Promotion) Qualifies(amount kernel.Money) bool {
	return !amount.LessThan(p.minimumAmount)
}

// Apply returns amount minus the discount when it qualifies, amount otherwise.
func (p Promotion) Apply(amount kernel.Money) (kernel.Money, bool) {
	if !p.Qualifies(amount) {
		return amount, false
	}
	return amount.Sub(p.discount), true
}

func (p Promotion) String() string {
	return p.description
}
