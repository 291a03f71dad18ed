package product

import (
	"errors"
	"fmt"
	"slices"

	"pizzeria/internal/pkg/errs"
)

// Options are the descriptors a customer may pick from when building a product.
type Options struct {
	Crusts   []string
	Sauces   []string
	Cheeses  []string
	Toppings []string
}

// Allows checks every descriptor of recipe against the options.
// A zero Options allows anything.
func (o Options) Allows(recipe Recipe) error {
	check := func(name string, allowed []string, values ...string) error {
		if len(allowed) == 0 {
			return nil
		}
		for _, v := range values {
			if !slices.Contains(allowed, v) {
				return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%q is not on the menu", v))
			}
		}
		return nil
	}

	return errors.Join(
		check("crust", o.Crusts, recipe.Crust),
		check("sauce", o.Sauces, recipe.Sauce),
		check("cheese", o.Cheeses, recipe.Cheese),
		check("topping", o.Toppings, recipe.Toppings...),
	)
}
