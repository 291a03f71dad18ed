package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/core/ports"
)

// CustomizeProductCommandHandler checks a recipe against the menu options and
// adds it to the catalog at the fixed custom price.
type CustomizeProductCommandHandler struct {
	catalog ports.CatalogRegistry
	options product.Options
}

func NewCustomizeProductCommandHandler(catalog ports.CatalogRegistry, options product.Options) CustomizeProductCommandHandler {
	return CustomizeProductCommandHandler{
		catalog: catalog,
		options: options,
	}
}

// Handle returns the stored product with its identifier assigned.
func (h *CustomizeProductCommandHandler) Handle(ctx context.Context, cmd CustomizeProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.options.Allows(cmd.Recipe()); err != nil {
		return nil, err
	}

	p, err := product.NewCustomProduct(cmd.Name(), cmd.Recipe())
	if err != nil {
		return nil, err
	}

	id, err := h.catalog.Add(ctx, p)
	if err != nil {
		return nil, err
	}

	return h.catalog.Get(ctx, id)
}
