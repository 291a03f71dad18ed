package services

import (
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/promotion"
)

// PromotionSelector is a domain service that applies the most valuable promotion
// an amount qualifies for.
//
// Business rules:
//   - A promotion qualifies when the amount is at least its minimum
//   - The best promotion is the qualifying one with the largest discount
//   - Ties go to the promotion listed first
//   - At most one promotion applies per checkout
//
// Example usage:
//
//	selector := services.NewPromotionSelector()
//	total, applied := selector.ApplyBest(kernel.MustMoney(24), promotions)
//	if applied != nil {
//	    fmt.Println("applied", applied.Description())
//	}
type PromotionSelector struct{}

// NewPromotionSelector creates a new PromotionSelector instance.
func NewPromotionSelector() PromotionSelector {
	return PromotionSelector{}
}

// ApplyBest returns the discounted amount and the promotion used, or the
// unchanged amount and nil when nothing qualifies.
func (s PromotionSelector) ApplyBest(amount kernel.Money, promotions []promotion.Promotion) (kernel.Money, *promotion.Promotion) {
	best := s.findBest(amount, promotions)
	if best == nil {
		return amount, nil
	}

	discounted, _ := best.Apply(amount)
	return discounted, best
}

func (s PromotionSelector) findBest(amount kernel.Money, promotions []promotion.Promotion) *promotion.Promotion {
	var best *promotion.Promotion
	for i := range promotions {
		p := promotions[i]
		if !p.Qualifies(amount) {
			continue
		}
		if best == nil || best.Discount().LessThan(p.Discount()) {
			best = &p
		}
	}
	return best
}
