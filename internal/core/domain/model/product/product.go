// Package product holds catalog entries and their rating arithmetic.
package product

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// CustomPriceCents is what every customer-built product costs.
const CustomPriceCents = 2000

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when creating a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Recipe describes how a product is built. Crust, sauce and cheese are required;
// toppings may be empty.
type Recipe struct {
	Crust    string
	Sauce    string
	Cheese   string
	Toppings []string
}

// Validate checks that the required descriptors are present.
func (r Recipe) Validate() error {
	required := func(name, value string) error {
		if strings.TrimSpace(value) == "" {
			return errs.NewValueIsRequiredError(name)
		}
		return nil
	}
	return errors.Join(
		required("crust", r.Crust),
		required("sauce", r.Sauce),
		required("cheese", r.Cheese),
	)
}

// RatingSummary is the running mean of every score a product received.
type RatingSummary struct {
	Average float64
	Count   int
}

// Product is a catalog entry: a seeded menu item or a customer-built one.
//
// Business rules:
//   - Name and recipe descriptors are required
//   - Base price is non-negative (enforced by kernel.Money)
//   - Rating changes only through Rate, as an incremental mean
//
// Example usage:
//
//	p, err := product.NewProduct("Margherita", product.Recipe{
//	    Crust: "Thin", Sauce: "Tomato", Cheese: "Mozzarella", Toppings: []string{"Basil"},
//	}, kernel.MustMoney(10))
type Product struct {
	id        kernel.ID
	name      string
	recipe    Recipe
	basePrice kernel.Money
	rating    RatingSummary
	guard     guard.ConstructorGuard
}

// NewProduct creates an unrated product. The catalog assigns its ID.
func NewProduct(name string, recipe Recipe, basePrice kernel.Money) (*Product, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	if err := errors.Join(nameErr, recipe.Validate()); err != nil {
		return nil, err
	}

	recipe.Toppings = slices.Clone(recipe.Toppings)
	return &Product{
		name:      name,
		recipe:    recipe,
		basePrice: basePrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewCustomProduct creates a customer-built product priced at CustomPriceCents.
func NewCustomProduct(name string, recipe Recipe) (*Product, error) {
	price, err := kernel.NewMoney(CustomPriceCents)
	if err != nil {
		return nil, err
	}
	return NewProduct(name, recipe, price)
}

// Validate ensures the product was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the catalog-assigned identifier.
func (p *Product) ID() kernel.ID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// BasePrice returns the price before promotions and loyalty discounts.
func (p *Product) BasePrice() kernel.Money {
	return p.basePrice
}

// RatingSummary returns the running mean and sample count.
func (p *Product) RatingSummary() RatingSummary {
	return p.rating
}

// Recipe returns a copy of the recipe.
func (p *Product) Recipe() Recipe {
	r := p.recipe
	r.Toppings = slices.Clone(p.recipe.Toppings)
	return r
}

// AssignID sets the identifier handed out by the catalog. It can only be set once.
func (p *Product) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if p.id.IsAssigned() {
		return errs.NewInvalidStateErrorWithCause("product", fmt.Errorf("id %s is already assigned", p.id))
	}
	p.id = id
	return nil
}

// Rate folds a new score into the running mean:
// newAvg = (oldAvg*count + r) / (count+1), count += 1.
func (p *Product) Rate(r kernel.Rating) error {
	if err := r.Validate(); err != nil {
		return err
	}
	total := p.rating.Average*float64(p.rating.Count) + r.Float()
	p.rating.Count++
	p.rating.Average = total / float64(p.rating.Count)
	return nil
}

// Clone returns an independent copy.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	c.recipe.Toppings = slices.Clone(p.recipe.Toppings)
	return &c
}

// String renders the catalog line shown to customers.
func (p *Product) String() string {
	toppings := "none"
	if len(p.recipe.Toppings) > 0 {
		toppings = strings.Join(p.recipe.Toppings, ", ")
	}
	return fmt.Sprintf("%s | Crust: %s | Sauce: %s | Cheese: %s | Toppings: %s | Base Price: %s | Rating: %.2f",
		p.name, p.recipe.Crust, p.recipe.Sauce, p.recipe.Cheese, toppings, p.basePrice, p.rating.Average)
}
