package console

import (
	"io"
	"strings"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/notification"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/services"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Renderer writes the read models as the lines customers see.
type Renderer struct {
	p *message.Printer
}

// NewRenderer formats numbers for tag. The currency symbol is always "$".
func NewRenderer(tag language.Tag) Renderer {
	return Renderer{p: message.NewPrinter(tag)}
}

// Price formats m with two decimals and digit grouping, e.g. $1,250.00.
func (r Renderer) Price(m kernel.Money) string {
	return r.p.Sprintf("$%.2f", m.Float())
}

func (r Renderer) Products(w io.Writer, products []queries.ProductResponse) {
	r.p.Fprintln(w, "\n🍕 Available Pizzas:")
	for i, p := range products {
		r.p.Fprintf(w, "%d. %s\n", i+1, r.productLine(p))
	}
}

func (r Renderer) productLine(p queries.ProductResponse) string {
	toppings := "none"
	if len(p.Toppings) > 0 {
		toppings = strings.Join(p.Toppings, ", ")
	}
	line := r.p.Sprintf("%s | Crust: %s | Sauce: %s | Cheese: %s | Toppings: %s | Base Price: %s",
		p.Name, p.Crust, p.Sauce, p.Cheese, toppings, r.Price(p.BasePrice))
	if p.Rating.Count > 0 {
		line += r.p.Sprintf(" | Rating: %.2f (%d)", p.Rating.Average, p.Rating.Count)
	}
	return line
}

func (r Renderer) Profile(w io.Writer, profile queries.GetProfileQueryResponse) {
	r.p.Fprintln(w, "\n👤 User Profile")
	r.p.Fprintf(w, "ID: %s | Name: %s | Contact: %s | Address: %s | Loyalty Points: %d\n",
		profile.ID, profile.Name, profile.Contact, profile.Address, profile.LoyaltyPoints)
	r.Favorites(w, profile.Favorites, false)
}

// Favorites lists favorite products, numbered when the customer is choosing one.
func (r Renderer) Favorites(w io.Writer, favorites []queries.ProductResponse, numbered bool) {
	r.p.Fprintln(w, "\n🌟 Your Favorite Pizzas:")
	if len(favorites) == 0 {
		r.p.Fprintln(w, "❌ No favorite pizzas found.")
		return
	}
	for i, p := range favorites {
		if numbered {
			r.p.Fprintf(w, "%d. ", i+1)
		}
		r.p.Fprintln(w, r.productLine(p))
	}
}

func (r Renderer) Notifications(w io.Writer, entries []notification.Entry) {
	r.p.Fprintln(w, "\n🔔 Notifications:")
	if len(entries) == 0 {
		r.p.Fprintln(w, "❌ No notifications.")
		return
	}
	for _, e := range entries {
		r.p.Fprintln(w, e.String())
	}
}

func (r Renderer) Promotions(w io.Writer, promotions []queries.GetPromotionsQueryResponse) {
	r.p.Fprintln(w, "\n🎉 Current Promotions:")
	if len(promotions) == 0 {
		r.p.Fprintln(w, "❌ No promotions right now.")
		return
	}
	for _, promo := range promotions {
		r.p.Fprintf(w, "🎉 %s (%s off from %s)\n", promo.Description, r.Price(promo.Discount), r.Price(promo.MinimumAmount))
	}
}

// Receipt lists the checkout steps in the order they were applied.
func (r Renderer) Receipt(w io.Writer, receipt payment.Receipt) {
	r.p.Fprintf(w, "💸 Subtotal: %s\n", r.Price(receipt.Subtotal))
	if receipt.PromotionApplied() {
		r.p.Fprintf(w, "🎉 %s: %s\n", receipt.Promotion, r.Price(receipt.AfterPromotion))
	}
	if !receipt.LoyaltyDiscount.IsZero() {
		r.p.Fprintf(w, "💸 Applied %d%% discount based on your loyalty points!\n", services.LoyaltyDiscountPercent)
	}
	r.p.Fprintf(w, "💸 Total amount after discount: %s\n", r.Price(receipt.Total))
	r.p.Fprintf(w, "💳 Payment processed successfully! (%s)\n", receipt.Method)

	switch {
	case receipt.PointsSpent > 0:
		r.p.Fprintf(w, "🎉 You spent %d loyalty points! Remaining points: %d\n", receipt.PointsSpent, receipt.PointsBalance)
	case receipt.Total.Cents() >= services.SpendUnitCents:
		r.p.Fprintf(w, "❌ Not enough loyalty points. You have %d points.\n", receipt.PointsBalance)
	}
	r.p.Fprintf(w, "🧾 Receipt %s\n", receipt.Reference.Short())
}
