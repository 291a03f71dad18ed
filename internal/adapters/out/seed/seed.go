// Package seed loads the startup catalog, promotions, customization options and
// delivery areas from YAML. A default data set is embedded in the binary.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/core/domain/model/promotion"
	"pizzeria/internal/core/ports"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Data is the parsed seed file.
type Data struct {
	Products   []Product   `yaml:"products"`
	Promotions []Promotion `yaml:"promotions"`
	Options    Options     `yaml:"options"`
	Areas      []string    `yaml:"areas"`
}

// Product is one seeded menu item.
type Product struct {
	Name     string   `yaml:"name"`
	Crust    string   `yaml:"crust"`
	Sauce    string   `yaml:"sauce"`
	Cheese   string   `yaml:"cheese"`
	Toppings []string `yaml:"toppings,omitempty"`
	Price    float64  `yaml:"price"`
}

// Promotion is one seeded discount. Amounts are in currency units.
type Promotion struct {
	Description string  `yaml:"description"`
	Discount    float64 `yaml:"discount"`
	Minimum     float64 `yaml:"minimum"`
}

// Options lists the descriptors offered when customizing a product.
type Options struct {
	Crusts   []string `yaml:"crusts"`
	Sauces   []string `yaml:"sauces"`
	Cheeses  []string `yaml:"cheeses"`
	Toppings []string `yaml:"toppings"`
}

// Default returns the embedded data set.
func Default() (*Data, error) {
	return Parse(defaultSeed)
}

// Load reads the file at path, or the embedded data set when path is empty.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes seed YAML, rejecting unknown fields.
func Parse(raw []byte) (*Data, error) {
	var data Data
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
	}

	if err := data.validate(); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return &data, nil
}

// ProductOptions converts the customization options.
func (d *Data) ProductOptions() product.Options {
	return product.Options{
		Crusts:   d.Options.Crusts,
		Sauces:   d.Options.Sauces,
		Cheeses:  d.Options.Cheeses,
		Toppings: d.Options.Toppings,
	}
}

// PromotionList converts the seeded promotions, keeping file order.
func (d *Data) PromotionList() ([]promotion.Promotion, error) {
	promotions := make([]promotion.Promotion, 0, len(d.Promotions))
	for i, p := range d.Promotions {
		discount, err := kernel.NewMoneyFromFloat(p.Discount)
		if err != nil {
			return nil, fmt.Errorf("promotions[%d]: %w", i, err)
		}
		minimum, err := kernel.NewMoneyFromFloat(p.Minimum)
		if err != nil {
			return nil, fmt.Errorf("promotions[%d]: %w", i, err)
		}
		promo, err := promotion.NewPromotion(p.Description, discount, minimum)
		if err != nil {
			return nil, fmt.Errorf("promotions[%d]: %w", i, err)
		}
		promotions = append(promotions, promo)
	}
	return promotions, nil
}

// Populate adds the seeded products to the catalog in file order.
func (d *Data) Populate(ctx context.Context, catalog ports.CatalogRegistry) error {
	for i, p := range d.Products {
		price, err := kernel.NewMoneyFromFloat(p.Price)
		if err != nil {
			return fmt.Errorf("products[%d]: %w", i, err)
		}
		item, err := product.NewProduct(p.Name, product.Recipe{
			Crust:    p.Crust,
			Sauce:    p.Sauce,
			Cheese:   p.Cheese,
			Toppings: p.Toppings,
		}, price)
		if err != nil {
			return fmt.Errorf("products[%d]: %w", i, err)
		}
		if _, err = catalog.Add(ctx, item); err != nil {
			return fmt.Errorf("products[%d]: %w", i, err)
		}
	}
	return nil
}

func (d *Data) validate() error {
	if len(d.Products) == 0 {
		return errors.New("products list is required and must be non-empty")
	}
	if len(d.Areas) == 0 {
		return errors.New("areas list is required and must be non-empty")
	}

	options := d.ProductOptions()
	for i, p := range d.Products {
		if p.Price < 0 {
			return fmt.Errorf("products[%d]: price must not be negative", i)
		}
		if err := options.Allows(product.Recipe{Crust: p.Crust, Sauce: p.Sauce, Cheese: p.Cheese, Toppings: p.Toppings}); err != nil {
			return fmt.Errorf("products[%d]: %w", i, err)
		}
	}
	for i, area := range d.Areas {
		if area == "" {
			return fmt.Errorf("areas[%d]: area is required", i)
		}
	}
	return nil
}
