package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/guard"
)

// DefaultCustomProductName names a customized pizza when the customer gives no name.
const DefaultCustomProductName = "Custom Pizza"

var (
	ErrCustomizeProductCommandIsNotConstructed = errors.New(
		"CustomizeProductCommand must be created via NewCustomizeProductCommand constructor",
	)
)

// CustomizeProductCommand adds a customer-designed pizza to the catalog.
//
// Example:
//
//	cmd, err := NewCustomizeProductCommand("", product.Recipe{
//	    Crust: "Thin", Sauce: "Pesto", Cheese: "Cheddar", Toppings: []string{"Olives"},
//	})
//	p, err := handler.Handle(ctx, cmd) // "Custom Pizza" at $20.00
type CustomizeProductCommand struct { //nolint:recvcheck //using for validation
	name   string
	recipe product.Recipe

	guard guard.ConstructorGuard
}

// NewCustomizeProductCommand validates the recipe. Menu membership of the
// descriptors is checked by the handler against the configured options.
func NewCustomizeProductCommand(name string, recipe product.Recipe) (CustomizeProductCommand, error) {
	cmd := CustomizeProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	cmd.setName(name)
	if err := cmd.setRecipe(recipe); err != nil {
		return CustomizeProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CustomizeProductCommand) Validate() error {
	return c.guard.Validate(ErrCustomizeProductCommandIsNotConstructed)
}

func (c CustomizeProductCommand) Name() string {
	return c.name
}

func (c CustomizeProductCommand) Recipe() product.Recipe {
	return c.recipe
}

func (c *CustomizeProductCommand) setName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultCustomProductName
	}
	c.name = name
}

func (c *CustomizeProductCommand) setRecipe(recipe product.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}

	c.recipe = recipe
	return nil
}
