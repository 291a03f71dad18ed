// Package promotionrepo serves the promotions seeded at startup.
package promotionrepo

import (
	"context"
	"slices"

	"pizzeria/internal/core/domain/model/promotion"
)

// Catalog implements ports.PromotionCatalog. It is immutable after construction,
// so it needs no lock.
type Catalog struct {
	promotions []promotion.Promotion
}

// NewCatalog creates a catalog holding a copy of promotions, in priority order.
func NewCatalog(promotions []promotion.Promotion) *Catalog {
	return &Catalog{promotions: slices.Clone(promotions)}
}

// All returns a copy of the promotions.
func (c *Catalog) All(ctx context.Context) ([]promotion.Promotion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(c.promotions), nil
}
