package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/product"
)

// CatalogRegistry holds the products customers can order.
// It is append-only except for rating updates.
type CatalogRegistry interface {
	// All returns every product in the order it was added.
	All(ctx context.Context) ([]*product.Product, error)

	// Add stores a product and returns its identifier.
	Add(ctx context.Context, p *product.Product) (kernel.ID, error)

	// Get returns a product by identifier, or ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)

	// Rate folds a score into the product's running mean and returns the new summary.
	Rate(ctx context.Context, id kernel.ID, r kernel.Rating) (product.RatingSummary, error)
}
