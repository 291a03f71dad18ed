package product_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var margheritaRecipe = product.Recipe{
	Crust:    "Thin",
	Sauce:    "Tomato",
	Cheese:   "Mozzarella",
	Toppings: []string{"Basil"},
}

func newMargherita(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.NewProduct("Margherita", margheritaRecipe, kernel.MustMoney(10))
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("should create unrated product", func(t *testing.T) {
		p := newMargherita(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, "Margherita", p.Name())
		assert.Equal(t, margheritaRecipe, p.Recipe())
		assert.Equal(t, "$10.00", p.BasePrice().String())
		assert.Equal(t, product.RatingSummary{}, p.RatingSummary())
	})

	t.Run("should require name and descriptors", func(t *testing.T) {
		p, err := product.NewProduct("", product.Recipe{Crust: "Thin"}, kernel.Money{})

		assert.Nil(t, p)
		assert.ErrorIs(t, err, product.ErrNameIsRequired)
		assert.Contains(t, err.Error(), "sauce")
		assert.Contains(t, err.Error(), "cheese")
		assert.NotContains(t, err.Error(), "crust")
	})

	t.Run("should copy toppings", func(t *testing.T) {
		toppings := []string{"Olives"}
		p, err := product.NewProduct("Custom", product.Recipe{
			Crust: "Thick", Sauce: "Pesto", Cheese: "Vegan Cheese", Toppings: toppings,
		}, kernel.Money{})
		require.NoError(t, err)

		toppings[0] = "Pepperoni"

		assert.Equal(t, []string{"Olives"}, p.Recipe().Toppings)
	})

	t.Run("should price custom products at twenty", func(t *testing.T) {
		p, err := product.NewCustomProduct("My Pizza", margheritaRecipe)

		require.NoError(t, err)
		assert.Equal(t, "$20.00", p.BasePrice().String())
	})
}

func TestProduct_Rate(t *testing.T) {
	t.Run("should set first rating", func(t *testing.T) {
		p := newMargherita(t)

		require.NoError(t, p.Rate(5))

		assert.Equal(t, product.RatingSummary{Average: 5.0, Count: 1}, p.RatingSummary())
	})

	t.Run("should keep incremental mean", func(t *testing.T) {
		p := newMargherita(t)

		for _, r := range []kernel.Rating{5, 4, 3, 2} {
			require.NoError(t, p.Rate(r))
		}

		assert.InDelta(t, 3.5, p.RatingSummary().Average, 1e-9)
		assert.Equal(t, 4, p.RatingSummary().Count)
	})

	t.Run("should reject out of range rating without change", func(t *testing.T) {
		p := newMargherita(t)

		assert.ErrorIs(t, p.Rate(0), errs.ErrValueIsOutOfRange)
		assert.ErrorIs(t, p.Rate(6), errs.ErrValueIsOutOfRange)
		assert.Zero(t, p.RatingSummary().Count)
	})
}

func TestProduct_AssignID(t *testing.T) {
	p := newMargherita(t)

	require.NoError(t, p.AssignID(1))
	assert.ErrorIs(t, p.AssignID(1), errs.ErrInvalidState)
}

func TestProduct_Clone(t *testing.T) {
	p := newMargherita(t)
	c := p.Clone()

	require.NoError(t, c.Rate(4))

	assert.Zero(t, p.RatingSummary().Count)
	assert.Equal(t, 1, c.RatingSummary().Count)
}

func TestProduct_String(t *testing.T) {
	p := newMargherita(t)
	require.NoError(t, p.Rate(4))

	assert.Equal(t,
		"Margherita | Crust: Thin | Sauce: Tomato | Cheese: Mozzarella | Toppings: Basil | Base Price: $10.00 | Rating: 4.00",
		p.String())
}

func TestOptions_Allows(t *testing.T) {
	options := product.Options{
		Crusts:   []string{"Thin", "Thick", "Stuffed"},
		Sauces:   []string{"Tomato", "Barbecue", "Pesto"},
		Cheeses:  []string{"Mozzarella", "Cheddar", "Vegan Cheese"},
		Toppings: []string{"Pepperoni", "Mushrooms", "Olives", "Basil"},
	}

	t.Run("should allow menu descriptors", func(t *testing.T) {
		assert.NoError(t, options.Allows(margheritaRecipe))
	})

	t.Run("should reject off-menu descriptors", func(t *testing.T) {
		err := options.Allows(product.Recipe{
			Crust: "Deep Dish", Sauce: "Tomato", Cheese: "Mozzarella", Toppings: []string{"Basil", "Pineapple"},
		})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "Deep Dish")
		assert.Contains(t, err.Error(), "Pineapple")
	})

	t.Run("should allow anything when empty", func(t *testing.T) {
		assert.NoError(t, product.Options{}.Allows(product.Recipe{Crust: "Any"}))
	})
}
