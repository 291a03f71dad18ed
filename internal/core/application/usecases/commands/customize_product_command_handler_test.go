package commands_test

import (
	"testing"

	"pizzeria/internal/adapters/out/memory/catalogrepo"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var menuOptions = product.Options{
	Crusts:   []string{"Thin", "Thick"},
	Sauces:   []string{"Tomato", "Pesto"},
	Cheeses:  []string{"Mozzarella", "Cheddar"},
	Toppings: []string{"Olives", "Basil"},
}

func TestCustomizeProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should add custom product at fixed price", func(t *testing.T) {
		catalog := catalogrepo.NewRegistry()
		cmd, err := commands.NewCustomizeProductCommand("", product.Recipe{
			Crust: "Thin", Sauce: "Pesto", Cheese: "Cheddar", Toppings: []string{"Olives"},
		})
		require.NoError(t, err)

		h := commands.NewCustomizeProductCommandHandler(catalog, menuOptions)
		p, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, p.ID().IsAssigned())
		assert.Equal(t, commands.DefaultCustomProductName, p.Name())
		assert.Equal(t, "$20.00", p.BasePrice().String())

		all, err := catalog.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("should reject off-menu topping", func(t *testing.T) {
		catalog := catalogrepo.NewRegistry()
		cmd, err := commands.NewCustomizeProductCommand("Island", product.Recipe{
			Crust: "Thin", Sauce: "Tomato", Cheese: "Mozzarella", Toppings: []string{"Pineapple"},
		})
		require.NoError(t, err)

		h := commands.NewCustomizeProductCommandHandler(catalog, menuOptions)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		all, _ := catalog.All(ctx)
		assert.Empty(t, all)
	})

	t.Run("should require descriptors", func(t *testing.T) {
		_, err := commands.NewCustomizeProductCommand("Plain", product.Recipe{Crust: "Thin"})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
