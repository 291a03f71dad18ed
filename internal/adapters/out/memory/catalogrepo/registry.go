// Package catalogrepo keeps the product catalog in memory.
package catalogrepo

import (
	"context"
	"fmt"
	"sync"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/errs"
)

// Registry implements ports.CatalogRegistry.
type Registry struct {
	mu       sync.RWMutex
	seq      kernel.Sequence
	products []*product.Product
	index    map[kernel.ID]int
}

// NewRegistry creates an empty catalog.
func NewRegistry() *Registry {
	return &Registry{index: make(map[kernel.ID]int)}
}

// All returns copies of every product in the order they were added.
func (r *Registry) All(ctx context.Context) ([]*product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*product.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p.Clone())
	}
	return products, nil
}

// Add stores a copy of p under the next identifier.
func (r *Registry) Add(ctx context.Context, p *product.Product) (kernel.ID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.ID().IsAssigned() {
		return 0, errs.NewInvalidStateErrorWithCause("product", fmt.Errorf("product %s is already in the catalog", p.ID()))
	}

	record := p.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.seq.Next()
	if err := record.AssignID(id); err != nil {
		return 0, err
	}
	r.index[id] = len(r.products)
	r.products = append(r.products, record)

	return id, nil
}

// Get returns a copy of one product.
func (r *Registry) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id)
	}
	return r.products[i].Clone(), nil
}

// Rate updates the stored product's running mean in place.
func (r *Registry) Rate(ctx context.Context, id kernel.ID, rating kernel.Rating) (product.RatingSummary, error) {
	if err := ctx.Err(); err != nil {
		return product.RatingSummary{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return product.RatingSummary{}, errs.NewObjectNotFoundError("product", id)
	}
	if err := r.products[i].Rate(rating); err != nil {
		return product.RatingSummary{}, err
	}
	return r.products[i].RatingSummary(), nil
}
