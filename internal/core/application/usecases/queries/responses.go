package queries

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/product"
)

// ProductResponse is the catalog read model shared by product and profile queries.
type ProductResponse struct {
	ID        kernel.ID
	Name      string
	Crust     string
	Sauce     string
	Cheese    string
	Toppings  []string
	BasePrice kernel.Money
	Rating    product.RatingSummary
	// Line is the one-line menu rendering of the product.
	Line string
}

func newProductResponse(p *product.Product) ProductResponse {
	recipe := p.Recipe()
	return ProductResponse{
		ID:        p.ID(),
		Name:      p.Name(),
		Crust:     recipe.Crust,
		Sauce:     recipe.Sauce,
		Cheese:    recipe.Cheese,
		Toppings:  recipe.Toppings,
		BasePrice: p.BasePrice(),
		Rating:    p.RatingSummary(),
		Line:      p.String(),
	}
}

// OrderResponse is the order read model.
type OrderResponse struct {
	ID          kernel.ID
	AccountID   kernel.ID
	ProductID   kernel.ID
	ProductName string
	Price       kernel.Money
	Fulfillment order.Fulfillment
	Destination string
	Status      order.Status
	CreatedAt   time.Time
	Feedback    string
	Rating      kernel.Rating
	// Summary is the notification-style line for the order.
	Summary string
}

func newOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID(),
		AccountID:   o.AccountID(),
		ProductID:   o.ProductID(),
		ProductName: o.ProductName(),
		Price:       o.Price(),
		Fulfillment: o.Fulfillment(),
		Destination: o.Destination(),
		Status:      o.Status(),
		CreatedAt:   o.CreatedAt(),
		Feedback:    o.Feedback(),
		Rating:      o.Rating(),
		Summary:     o.Summary(),
	}
}
