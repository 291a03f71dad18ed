// Package session exposes the customer-facing operations of the ordering
// engine to presentation adapters. A Coordinator owns one instance of every
// command and query handler and translates raw presentation input into
// validated commands.
//
// The Coordinator never blocks on the lifecycle ticker: every store it reaches
// is safe for concurrent use and holds its lock only while copying records.
package session

import (
	"context"
	"log/slog"
	"slices"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/notification"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
)

// Dependencies are the stores and seeded reference data a Coordinator works on.
type Dependencies struct {
	Orders        ports.OrderStore
	Accounts      ports.AccountRegistry
	Catalog       ports.CatalogRegistry
	Notifications ports.NotificationLog
	Promotions    ports.PromotionCatalog

	// Options restricts customized products to menu descriptors.
	Options product.Options
	// Areas are the delivery areas an address may be in.
	Areas []string

	Logger *slog.Logger
}

// Coordinator is the session facade used by the console and HTTP adapters.
//
// Example:
//
//	c := session.NewCoordinator(deps)
//	acc, err := c.Register(ctx, "Nimal", "0771234567")
//	o, err := c.PlaceOrder(ctx, acc.ID(), productID, order.Pickup, "")
//	receipt, err := c.Checkout(ctx, acc.ID(), o.ID(), payment.Cash)
type Coordinator struct {
	accounts ports.AccountRegistry
	options  product.Options
	areas    []string
	logger   *slog.Logger

	registerAccount  commands.RegisterAccountCommandHandler
	placeOrder       commands.PlaceOrderCommandHandler
	checkout         commands.CheckoutCommandHandler
	recordFeedback   commands.RecordFeedbackCommandHandler
	customizeProduct commands.CustomizeProductCommandHandler
	updateAddress    commands.UpdateAddressCommandHandler
	favorites        commands.FavoriteCommandHandler

	products      queries.GetProductsQueryHandler
	orders        queries.GetOrdersQueryHandler
	order         queries.GetOrderQueryHandler
	notifications queries.GetNotificationsQueryHandler
	profile       queries.GetProfileQueryHandler
	promotions    queries.GetPromotionsQueryHandler
}

// NewCoordinator wires the handlers over deps.
func NewCoordinator(deps Dependencies) *Coordinator {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	calculator := services.NewPaymentCalculator(services.NewPromotionSelector())

	return &Coordinator{
		accounts: deps.Accounts,
		options:  deps.Options,
		areas:    slices.Clone(deps.Areas),
		logger:   logger.With("component", "SessionCoordinator"),

		registerAccount:  commands.NewRegisterAccountCommandHandler(deps.Accounts),
		placeOrder:       commands.NewPlaceOrderCommandHandler(deps.Orders, deps.Accounts, deps.Catalog),
		checkout:         commands.NewCheckoutCommandHandler(deps.Orders, deps.Accounts, deps.Promotions, calculator),
		recordFeedback:   commands.NewRecordFeedbackCommandHandler(deps.Orders, deps.Catalog),
		customizeProduct: commands.NewCustomizeProductCommandHandler(deps.Catalog, deps.Options),
		updateAddress:    commands.NewUpdateAddressCommandHandler(deps.Accounts, deps.Areas),
		favorites:        commands.NewFavoriteCommandHandler(deps.Accounts, deps.Catalog),

		products:      queries.NewGetProductsQueryHandler(deps.Catalog),
		orders:        queries.NewGetOrdersQueryHandler(deps.Orders),
		order:         queries.NewGetOrderQueryHandler(deps.Orders),
		notifications: queries.NewGetNotificationsQueryHandler(deps.Notifications),
		profile:       queries.NewGetProfileQueryHandler(deps.Accounts, deps.Catalog),
		promotions:    queries.NewGetPromotionsQueryHandler(deps.Promotions),
	}
}

// Register signs a customer up. A contact number that is already registered
// fails with ValueIsInvalidError.
func (c *Coordinator) Register(ctx context.Context, name, contact string) (*account.Account, error) {
	number, err := kernel.NewContactNumber(contact)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewRegisterAccountCommand(name, number)
	if err != nil {
		return nil, err
	}

	acc, err := c.registerAccount.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "account registered", "account_id", acc.ID().String())
	return acc, nil
}

// FindByContact logs a customer in. Returns ObjectNotFoundError for unknown numbers.
func (c *Coordinator) FindByContact(ctx context.Context, contact string) (*account.Account, error) {
	number, err := kernel.NewContactNumber(contact)
	if err != nil {
		return nil, err
	}
	return c.accounts.FindByContact(ctx, number)
}

// PlaceOrder inserts an order in Received status and credits loyalty points.
// An empty address on a delivery order means the account's saved address.
func (c *Coordinator) PlaceOrder(
	ctx context.Context,
	accountID, productID kernel.ID,
	fulfillment order.Fulfillment,
	address string,
) (*order.Order, error) {
	cmd, err := commands.NewPlaceOrderCommand(accountID, productID, fulfillment, address)
	if err != nil {
		return nil, err
	}

	o, err := c.placeOrder.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "order placed",
		"order_id", o.ID().String(),
		"account_id", accountID.String(),
		"fulfillment", fulfillment.String())
	return o, nil
}

// Checkout charges the account for one of its orders.
func (c *Coordinator) Checkout(
	ctx context.Context,
	accountID, orderID kernel.ID,
	method payment.Method,
) (payment.Receipt, error) {
	cmd, err := commands.NewCheckoutCommand(accountID, orderID, method)
	if err != nil {
		return payment.Receipt{}, err
	}

	receipt, err := c.checkout.Handle(ctx, cmd)
	if err != nil {
		return payment.Receipt{}, err
	}

	c.logger.InfoContext(ctx, "order paid",
		"order_id", orderID.String(),
		"reference", receipt.Reference.String(),
		"total", receipt.Total.String())
	return receipt, nil
}

// RecordFeedback stores a review on a Delivered order and updates the
// product's rating. Orders in any other status fail with InvalidStateError.
func (c *Coordinator) RecordFeedback(
	ctx context.Context,
	orderID kernel.ID,
	text string,
	rating int,
) (product.RatingSummary, error) {
	r, err := kernel.NewRating(rating)
	if err != nil {
		return product.RatingSummary{}, err
	}

	cmd, err := commands.NewRecordFeedbackCommand(orderID, text, r)
	if err != nil {
		return product.RatingSummary{}, err
	}
	return c.recordFeedback.Handle(ctx, cmd)
}

// CustomizeProduct adds a customer-designed product to the catalog.
func (c *Coordinator) CustomizeProduct(ctx context.Context, name string, recipe product.Recipe) (*product.Product, error) {
	cmd, err := commands.NewCustomizeProductCommand(name, recipe)
	if err != nil {
		return nil, err
	}
	return c.customizeProduct.Handle(ctx, cmd)
}

// UpdateAddress saves the account's delivery address.
func (c *Coordinator) UpdateAddress(
	ctx context.Context,
	accountID kernel.ID,
	area, street, identifier string,
) (*account.Account, error) {
	cmd, err := commands.NewUpdateAddressCommand(accountID, area, street, identifier)
	if err != nil {
		return nil, err
	}
	return c.updateAddress.Handle(ctx, cmd)
}

func (c *Coordinator) AddFavorite(ctx context.Context, accountID, productID kernel.ID) (*account.Account, error) {
	cmd, err := commands.NewAddFavoriteCommand(accountID, productID)
	if err != nil {
		return nil, err
	}
	return c.favorites.Handle(ctx, cmd)
}

func (c *Coordinator) RemoveFavorite(ctx context.Context, accountID, productID kernel.ID) (*account.Account, error) {
	cmd, err := commands.NewRemoveFavoriteCommand(accountID, productID)
	if err != nil {
		return nil, err
	}
	return c.favorites.Handle(ctx, cmd)
}

func (c *Coordinator) Profile(ctx context.Context, accountID kernel.ID) (queries.GetProfileQueryResponse, error) {
	query, err := queries.NewGetProfileQuery(accountID)
	if err != nil {
		return queries.GetProfileQueryResponse{}, err
	}
	return c.profile.Handle(ctx, query)
}

func (c *Coordinator) Products(ctx context.Context) ([]queries.ProductResponse, error) {
	return c.products.Handle(ctx, queries.NewGetProductsQuery())
}

func (c *Coordinator) Promotions(ctx context.Context) ([]queries.GetPromotionsQueryResponse, error) {
	return c.promotions.Handle(ctx, queries.NewGetPromotionsQuery())
}

// Orders lists every order in insertion order.
func (c *Coordinator) Orders(ctx context.Context) ([]queries.OrderResponse, error) {
	return c.orders.Handle(ctx, queries.NewGetOrdersQuery())
}

// OrdersFor lists one account's orders.
func (c *Coordinator) OrdersFor(ctx context.Context, accountID kernel.ID) ([]queries.OrderResponse, error) {
	query, err := queries.NewGetAccountOrdersQuery(accountID)
	if err != nil {
		return nil, err
	}
	return c.orders.Handle(ctx, query)
}

func (c *Coordinator) Order(ctx context.Context, orderID kernel.ID) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.OrderResponse{}, err
	}
	return c.order.Handle(ctx, query)
}

func (c *Coordinator) Notifications(ctx context.Context) ([]notification.Entry, error) {
	return c.notifications.Handle(ctx, queries.NewGetNotificationsQuery(0))
}

// NotificationsSince returns the entries appended after seq.
func (c *Coordinator) NotificationsSince(ctx context.Context, seq uint64) ([]notification.Entry, error) {
	return c.notifications.Handle(ctx, queries.NewGetNotificationsQuery(seq))
}

// DeliveryAreas lists the seeded areas in menu order.
func (c *Coordinator) DeliveryAreas() []string {
	return slices.Clone(c.areas)
}

// Options returns the descriptors a customized product may use.
func (c *Coordinator) Options() product.Options {
	return c.options
}
