package queries

import (
	"context"

	"pizzeria/internal/core/ports"
)

// GetProductsQueryHandler reads the catalog registry.
type GetProductsQueryHandler struct {
	catalog ports.CatalogRegistry
}

func NewGetProductsQueryHandler(catalog ports.CatalogRegistry) GetProductsQueryHandler {
	return GetProductsQueryHandler{catalog: catalog}
}

// Handle returns every product, seeded ones first, then customized ones.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, newProductResponse(p))
	}
	return result, nil
}
