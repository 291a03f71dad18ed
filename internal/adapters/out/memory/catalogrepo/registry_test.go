package catalogrepo_test

import (
	"sync"
	"testing"

	"pizzeria/internal/adapters/out/memory/catalogrepo"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, name string, price float64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(name, product.Recipe{Crust: "Thin", Sauce: "Tomato", Cheese: "Mozzarella"}, kernel.MustMoney(price))
	require.NoError(t, err)
	return p
}

func TestRegistry_AddAndAll(t *testing.T) {
	r := catalogrepo.NewRegistry()

	first, err := r.Add(t.Context(), newProduct(t, "Margherita", 10))
	require.NoError(t, err)
	second, err := r.Add(t.Context(), newProduct(t, "Pepperoni", 12))
	require.NoError(t, err)

	all, err := r.All(t.Context())
	require.NoError(t, err)

	require.Len(t, all, 2)
	assert.Equal(t, first, all[0].ID())
	assert.Equal(t, second, all[1].ID())
	assert.Equal(t, "Pepperoni", all[1].Name())
}

func TestRegistry_AddRejectsStoredProduct(t *testing.T) {
	r := catalogrepo.NewRegistry()
	id, err := r.Add(t.Context(), newProduct(t, "Margherita", 10))
	require.NoError(t, err)
	stored, err := r.Get(t.Context(), id)
	require.NoError(t, err)

	_, err = r.Add(t.Context(), stored)

	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestRegistry_Rate(t *testing.T) {
	t.Run("should update stored product from zero", func(t *testing.T) {
		r := catalogrepo.NewRegistry()
		id, err := r.Add(t.Context(), newProduct(t, "Pepperoni", 12))
		require.NoError(t, err)

		summary, err := r.Rate(t.Context(), id, 5)

		require.NoError(t, err)
		assert.Equal(t, product.RatingSummary{Average: 5.0, Count: 1}, summary)
		stored, err := r.Get(t.Context(), id)
		require.NoError(t, err)
		assert.Equal(t, summary, stored.RatingSummary())
	})

	t.Run("should not lose concurrent ratings", func(t *testing.T) {
		r := catalogrepo.NewRegistry()
		id, err := r.Add(t.Context(), newProduct(t, "Pepperoni", 12))
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := range 40 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = r.Rate(t.Context(), id, kernel.Rating(i%5+1))
			}()
		}
		wg.Wait()

		stored, err := r.Get(t.Context(), id)
		require.NoError(t, err)
		assert.Equal(t, 40, stored.RatingSummary().Count)
		assert.InDelta(t, 3.0, stored.RatingSummary().Average, 1e-9)
	})

	t.Run("should report missing product", func(t *testing.T) {
		r := catalogrepo.NewRegistry()

		_, err := r.Rate(t.Context(), 9, 5)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
