// Package console is the interactive menu customers use to sign in, order,
// pay and review. All input validation that only exists to re-prompt the
// customer lives here; the session coordinator sees validated values only.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/notification"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/errs"

	"golang.org/x/text/language"
)

// Coordinator is the part of the session coordinator the menu drives.
type Coordinator interface {
	Register(ctx context.Context, name, contact string) (*account.Account, error)
	FindByContact(ctx context.Context, contact string) (*account.Account, error)
	PlaceOrder(ctx context.Context, accountID, productID kernel.ID, fulfillment order.Fulfillment, address string) (*order.Order, error)
	Checkout(ctx context.Context, accountID, orderID kernel.ID, method payment.Method) (payment.Receipt, error)
	RecordFeedback(ctx context.Context, orderID kernel.ID, text string, rating int) (product.RatingSummary, error)
	CustomizeProduct(ctx context.Context, name string, recipe product.Recipe) (*product.Product, error)
	UpdateAddress(ctx context.Context, accountID kernel.ID, area, street, identifier string) (*account.Account, error)
	AddFavorite(ctx context.Context, accountID, productID kernel.ID) (*account.Account, error)
	RemoveFavorite(ctx context.Context, accountID, productID kernel.ID) (*account.Account, error)
	Profile(ctx context.Context, accountID kernel.ID) (queries.GetProfileQueryResponse, error)
	Products(ctx context.Context) ([]queries.ProductResponse, error)
	Promotions(ctx context.Context) ([]queries.GetPromotionsQueryResponse, error)
	OrdersFor(ctx context.Context, accountID kernel.ID) ([]queries.OrderResponse, error)
	Notifications(ctx context.Context) ([]notification.Entry, error)
	DeliveryAreas() []string
	Options() product.Options
}

const (
	choiceCustomize = iota + 1
	choicePlaceOrder
	choiceUpdateAddress
	choiceProfile
	choiceAddFavorite
	choiceRemoveFavorite
	choiceNotifications
	choicePromotions
	choiceFeedback
	choiceExit
)

var mainMenu = []string{
	"Customize a Pizza",
	"Place an Order",
	"Update Delivery Address",
	"View User Profile and Favorites",
	"Add to Favorites",
	"Remove from Favorites",
	"View Notifications",
	"View Promotions",
	"Give Feedback and Rating",
	"Exit",
}

// Session is one customer at the terminal.
type Session struct {
	coordinator Coordinator
	prompt      *Prompter
	render      Renderer
	out         io.Writer
	now         func() time.Time
	logger      *slog.Logger

	accountID kernel.ID
}

// Option customizes a Session.
type Option func(*Session)

// WithClock replaces the clock used to check card expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLanguage sets the number formatting of prices.
func WithLanguage(tag language.Tag) Option {
	return func(s *Session) { s.render = NewRenderer(tag) }
}

func NewSession(coordinator Coordinator, in io.Reader, out io.Writer, logger *slog.Logger, opts ...Option) *Session {
	s := &Session{
		coordinator: coordinator,
		prompt:      NewPrompter(in, out),
		render:      NewRenderer(language.English),
		out:         out,
		now:         time.Now,
		logger:      logger.With("component", "ConsoleSession"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run signs the customer in and serves the main menu until Exit is chosen,
// input ends or ctx is cancelled. End of input and cancellation are not errors.
func (s *Session) Run(ctx context.Context) error {
	defer s.prompt.Close()

	err := s.run(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	s.prompt.Println("👤 Welcome to the Pizza Ordering System")

	for !s.accountID.IsAssigned() {
		if err := s.signIn(ctx); err != nil {
			return err
		}
	}

	for {
		s.prompt.Println("\n📜 Menu:")
		for i, item := range mainMenu {
			s.prompt.Printf("%d. %s\n", i+1, item)
		}
		choice, err := s.prompt.Choice(ctx, "💡 Enter your choice: ", len(mainMenu))
		if err != nil {
			return err
		}
		if choice == choiceExit {
			s.prompt.Println("👋 Goodbye!")
			return nil
		}
		if err = s.dispatch(ctx, choice); err != nil {
			return err
		}
	}
}

func (s *Session) dispatch(ctx context.Context, choice int) error {
	var action func(context.Context) error
	switch choice {
	case choiceCustomize:
		action = s.customize
	case choicePlaceOrder:
		action = s.placeOrder
	case choiceUpdateAddress:
		action = s.updateAddress
	case choiceProfile:
		action = s.profile
	case choiceAddFavorite:
		action = s.addFavorite
	case choiceRemoveFavorite:
		action = s.removeFavorite
	case choiceNotifications:
		action = s.notifications
	case choicePromotions:
		action = s.promotions
	case choiceFeedback:
		action = s.feedback
	default:
		s.prompt.Println("❌ Invalid choice. Please enter a valid option.")
		return nil
	}
	return s.report(action(ctx))
}

// report prints failures the customer can act on and keeps the menu running.
// Input and cancellation errors end the session.
func (s *Session) report(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, commands.ErrAddressIsNotSet):
		s.prompt.Println("❌ Address not set. Please update your address first.")
	default:
		s.logger.Warn("menu action failed", "account_id", s.accountID.String(), "error", err)
		s.prompt.Printf("❌ %s\n", err)
	}
	return nil
}

func (s *Session) signIn(ctx context.Context) error {
	s.prompt.Println("\n📜 Menu:")
	s.prompt.Println("1. Sign Up")
	s.prompt.Println("2. Log In")
	choice, err := s.prompt.Choice(ctx, "💡 Enter your choice: ", 2)
	if err != nil {
		return err
	}
	if choice == 1 {
		return s.signUp(ctx)
	}
	return s.logIn(ctx)
}

func (s *Session) signUp(ctx context.Context) error {
	s.prompt.Println("\n🎉 Sign Up")
	name, err := s.prompt.Text(ctx, "💡 Enter your name: ")
	if err != nil {
		return err
	}
	contact, err := s.prompt.Contact(ctx, "💡 Enter your contact number (10 digits): ")
	if err != nil {
		return err
	}

	acc, err := s.coordinator.Register(ctx, name, contact)
	if errors.Is(err, errs.ErrValueIsInvalid) {
		s.prompt.Println("❌ Contact number already exists. Please log in.")
		return nil
	}
	if err != nil {
		return err
	}

	s.accountID = acc.ID()
	s.logger.Info("account registered", "account_id", acc.ID().String())
	s.prompt.Printf("✅ Sign-Up successful! Welcome, %s\n", acc.Name())
	return nil
}

func (s *Session) logIn(ctx context.Context) error {
	s.prompt.Println("\n🔑 Log In")
	contact, err := s.prompt.Contact(ctx, "💡 Enter your contact number: ")
	if err != nil {
		return err
	}

	acc, err := s.coordinator.FindByContact(ctx, contact)
	if errors.Is(err, errs.ErrObjectNotFound) {
		s.prompt.Println("❌ User not found. Please sign up.")
		return nil
	}
	if err != nil {
		return err
	}

	s.accountID = acc.ID()
	s.prompt.Printf("✅ Login successful! Welcome back, %s\n", acc.Name())
	return nil
}

func (s *Session) customize(ctx context.Context) error {
	s.prompt.Println("\n🍕 Customize your Pizza")
	name, err := s.prompt.Optional(ctx,
		fmt.Sprintf("💡 Enter a name for your pizza (default: %s): ", commands.DefaultCustomProductName))
	if err != nil {
		return err
	}

	options := s.coordinator.Options()
	var recipe product.Recipe
	if recipe.Crust, err = s.prompt.Pick(ctx, "💡 Choose crust:", options.Crusts); err != nil {
		return err
	}
	if recipe.Sauce, err = s.prompt.Pick(ctx, "💡 Choose sauce:", options.Sauces); err != nil {
		return err
	}
	if recipe.Cheese, err = s.prompt.Pick(ctx, "💡 Choose cheese:", options.Cheeses); err != nil {
		return err
	}
	if recipe.Toppings, err = s.prompt.PickMany(ctx,
		"💡 Choose toppings (enter numbers separated by commas):", options.Toppings); err != nil {
		return err
	}

	p, err := s.coordinator.CustomizeProduct(ctx, name, recipe)
	if err != nil {
		return err
	}
	s.prompt.Printf("✅ Custom pizza created: %s\n", p)
	return nil
}

// chooseProduct lists the catalog and returns the picked product.
func (s *Session) chooseProduct(ctx context.Context, prompt string) (queries.ProductResponse, error) {
	products, err := s.coordinator.Products(ctx)
	if err != nil {
		return queries.ProductResponse{}, err
	}
	s.render.Products(s.out, products)

	n, err := s.prompt.Choice(ctx, prompt, len(products))
	if err != nil {
		return queries.ProductResponse{}, err
	}
	return products[n-1], nil
}

func (s *Session) placeOrder(ctx context.Context) error {
	s.prompt.Println("\n🍕 Place an Order")
	p, err := s.chooseProduct(ctx, "💡 Enter the number of the pizza you want: ")
	if err != nil {
		return err
	}

	choice, err := s.prompt.Choice(ctx, "💡 Delivery or Pickup? (1 for Delivery, 2 for Pickup): ", 2)
	if err != nil {
		return err
	}
	fulfillment := order.Delivery
	if choice == 2 {
		fulfillment = order.Pickup
	}

	o, err := s.coordinator.PlaceOrder(ctx, s.accountID, p.ID, fulfillment, "")
	if err != nil {
		return err
	}
	s.prompt.Printf("✅ Order placed successfully: %s\n", o.Summary())

	return s.pay(ctx, o.ID())
}

func (s *Session) pay(ctx context.Context, orderID kernel.ID) error {
	methods := make([]string, len(payment.Methods))
	for i, m := range payment.Methods {
		methods[i] = m.String()
	}
	picked, err := s.prompt.Pick(ctx, "\n💳 Choose your payment method:", methods)
	if err != nil {
		return err
	}
	method, err := payment.ParseMethod(picked)
	if err != nil {
		return err
	}

	if method.RequiresCard() {
		s.prompt.Printf("🔐 Please provide card details for %s\n", method)
		if _, err = s.prompt.CardNumber(ctx); err != nil {
			return err
		}
		if _, err = s.prompt.Expiry(ctx, s.now()); err != nil {
			return err
		}
	}

	receipt, err := s.coordinator.Checkout(ctx, s.accountID, orderID, method)
	if err != nil {
		return err
	}
	s.render.Receipt(s.out, receipt)
	return nil
}

func (s *Session) updateAddress(ctx context.Context) error {
	s.prompt.Println("\n📍 Update Delivery Address")
	area, err := s.prompt.Pick(ctx, "💡 Choose your area:", s.coordinator.DeliveryAreas())
	if err != nil {
		return err
	}
	street, err := s.prompt.Text(ctx, "💡 Enter your street name: ")
	if err != nil {
		return err
	}
	identifier, err := s.prompt.Optional(ctx, "💡 Enter an identifier (e.g., apartment number, floor): ")
	if err != nil {
		return err
	}

	acc, err := s.coordinator.UpdateAddress(ctx, s.accountID, area, street, identifier)
	if err != nil {
		return err
	}
	s.prompt.Printf("✅ Address updated to: %s\n", acc.Address())
	return nil
}

func (s *Session) profile(ctx context.Context) error {
	profile, err := s.coordinator.Profile(ctx, s.accountID)
	if err != nil {
		return err
	}
	s.render.Profile(s.out, profile)
	return nil
}

func (s *Session) addFavorite(ctx context.Context) error {
	p, err := s.chooseProduct(ctx, "💡 Enter the number of the pizza you want to add to favorites: ")
	if err != nil {
		return err
	}
	if _, err = s.coordinator.AddFavorite(ctx, s.accountID, p.ID); err != nil {
		return err
	}
	s.prompt.Printf("✅ Added to favorites: %s\n", p.Name)
	return nil
}

func (s *Session) removeFavorite(ctx context.Context) error {
	profile, err := s.coordinator.Profile(ctx, s.accountID)
	if err != nil {
		return err
	}
	s.render.Favorites(s.out, profile.Favorites, true)
	if len(profile.Favorites) == 0 {
		return nil
	}

	n, err := s.prompt.Choice(ctx, "💡 Enter the number of the pizza you want to remove from favorites: ",
		len(profile.Favorites))
	if err != nil {
		return err
	}
	p := profile.Favorites[n-1]
	if _, err = s.coordinator.RemoveFavorite(ctx, s.accountID, p.ID); err != nil {
		return err
	}
	s.prompt.Printf("✅ Removed from favorites: %s\n", p.Name)
	return nil
}

func (s *Session) notifications(ctx context.Context) error {
	entries, err := s.coordinator.Notifications(ctx)
	if err != nil {
		return err
	}
	s.render.Notifications(s.out, entries)
	return nil
}

func (s *Session) promotions(ctx context.Context) error {
	promotions, err := s.coordinator.Promotions(ctx)
	if err != nil {
		return err
	}
	s.render.Promotions(s.out, promotions)
	return nil
}

// feedback offers only the customer's delivered orders.
func (s *Session) feedback(ctx context.Context) error {
	s.prompt.Println("\n🌟 Provide Feedback and Rating")
	orders, err := s.coordinator.OrdersFor(ctx, s.accountID)
	if err != nil {
		return err
	}

	var delivered []queries.OrderResponse
	for _, o := range orders {
		if o.Status == order.Delivered {
			delivered = append(delivered, o)
		}
	}
	if len(delivered) == 0 {
		s.prompt.Println("❌ You don't have any delivered orders to give feedback for.")
		return nil
	}

	s.prompt.Println("💬 Select an order to give feedback:")
	for i, o := range delivered {
		s.prompt.Printf("%d. Order #%s | %s\n", i+1, o.ID, o.ProductName)
	}
	n, err := s.prompt.Choice(ctx, "💡 Enter the number of the order to give feedback: ", len(delivered))
	if err != nil {
		return err
	}

	text, err := s.prompt.Optional(ctx, "💬 Enter your feedback: ")
	if err != nil {
		return err
	}
	rating, err := s.prompt.Choice(ctx, "⭐ Rate the pizza (1 to 5): ", int(kernel.MaxRating))
	if err != nil {
		return err
	}

	summary, err := s.coordinator.RecordFeedback(ctx, delivered[n-1].ID, strings.TrimSpace(text), rating)
	if err != nil {
		return err
	}
	s.prompt.Println("✅ Thank you for your feedback and rating!")
	s.prompt.Printf("⭐ %s is now rated %.2f from %d reviews\n", delivered[n-1].ProductName, summary.Average, summary.Count)
	return nil
}
