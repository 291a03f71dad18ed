package services

import (
	"errors"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/promotion"
)

const (
	// LoyaltyDiscountPercent is taken off when the customer holds any loyalty points.
	LoyaltyDiscountPercent = 5
	// SpendUnitCents is the charged amount that costs one loyalty point.
	SpendUnitCents = 1000
)

// Charge is the breakdown of what a customer pays for one order.
type Charge struct {
	Subtotal        kernel.Money
	Promotion       *promotion.Promotion
	AfterPromotion  kernel.Money
	LoyaltyDiscount kernel.Money
	Total           kernel.Money
	PointsSpent     int64
}

// PaymentCalculator is a domain service that turns an order price and the
// customer's loyalty balance into the charged total.
//
// Key responsibilities:
//   - Applying the best promotion through PromotionSelector
//   - Applying the loyalty discount
//   - Spending loyalty points for the charged total
//
// Business rules:
//   - Promotions apply before the loyalty discount
//   - The loyalty discount is LoyaltyDiscountPercent of the promoted amount, given whenever the balance is positive
//   - One point is spent per whole SpendUnitCents of the total, and only if the balance covers all of them
//   - A balance that does not cover the points is left untouched and the payment still succeeds
//
// Example usage:
//
//	calc := services.NewPaymentCalculator(services.NewPromotionSelector())
//	charge, err := calc.Charge(o, acc, promotions)
//	if err != nil {
//	    // Order or account not constructed
//	}
//	fmt.Println(charge.Total)
type PaymentCalculator struct {
	promotions PromotionSelector
}

// NewPaymentCalculator creates a PaymentCalculator using the given selector.
func NewPaymentCalculator(selector PromotionSelector) PaymentCalculator {
	return PaymentCalculator{promotions: selector}
}

// Quote computes the charge without touching any account.
func (c PaymentCalculator) Quote(price kernel.Money, loyaltyBalance int64, promotions []promotion.Promotion) Charge {
	afterPromotion, applied := c.promotions.ApplyBest(price, promotions)

	var loyaltyDiscount kernel.Money
	if loyaltyBalance > 0 {
		loyaltyDiscount = afterPromotion.Percent(LoyaltyDiscountPercent)
	}
	total := afterPromotion.Sub(loyaltyDiscount)

	var pointsSpent int64
	if points := total.Cents() / SpendUnitCents; points <= loyaltyBalance {
		pointsSpent = points
	}

	return Charge{
		Subtotal:        price,
		Promotion:       applied,
		AfterPromotion:  afterPromotion,
		LoyaltyDiscount: loyaltyDiscount,
		Total:           total,
		PointsSpent:     pointsSpent,
	}
}

// Charge quotes the order for the account and spends the quoted loyalty points.
//
// Returns:
//   - Charge: The breakdown; the account's balance already reflects PointsSpent
//   - error: Construction errors of the order or account
func (c PaymentCalculator) Charge(o *order.Order, acc *account.Account, promotions []promotion.Promotion) (Charge, error) {
	if err := errors.Join(o.Validate(), acc.Validate()); err != nil {
		return Charge{}, err
	}

	charge := c.Quote(o.Price(), acc.LoyaltyPoints(), promotions)
	if err := acc.SpendLoyaltyPoints(charge.PointsSpent); err != nil {
		return Charge{}, err
	}

	return charge, nil
}
