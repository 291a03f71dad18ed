package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/promotion"
)

// PromotionCatalog lists the promotions seeded at startup.
type PromotionCatalog interface {
	All(ctx context.Context) ([]promotion.Promotion, error)
}
