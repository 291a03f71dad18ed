package commands

import (
	"context"
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// ErrAddressIsNotSet is returned when a delivery falls back to an account without an address.
var ErrAddressIsNotSet = errors.New("address not set, please update your address first")

// PlaceOrderCommandHandler creates orders in Received status and rewards the customer.
//
// Processing rules:
//   - The product is priced at its current base price; later catalog changes do not affect the order
//   - A delivery without an explicit address uses the account's saved address
//   - The customer earns loyalty points equal to the whole-dollar part of the price
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(store, accounts, catalog)
//	cmd, _ := NewPlaceOrderCommand(accountID, productID, order.Pickup, "")
//	o, err := handler.Handle(ctx, cmd)
type PlaceOrderCommandHandler struct {
	orders   OrderPlacer
	accounts ports.AccountRegistry
	catalog  ports.CatalogRegistry
	now      func() time.Time
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	orders OrderPlacer,
	accounts ports.AccountRegistry,
	catalog ports.CatalogRegistry,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		orders:   orders,
		accounts: accounts,
		catalog:  catalog,
		now:      time.Now,
	}
}

// Handle places the order and returns the stored copy with its identifier.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	acc, err := h.accounts.Get(ctx, cmd.AccountID())
	if err != nil {
		return nil, err
	}

	p, err := h.catalog.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	address := cmd.Address()
	if cmd.Fulfillment() == order.Delivery && address == "" {
		if !acc.HasAddress() {
			return nil, ErrAddressIsNotSet
		}
		address = acc.Address()
	}

	item := order.Item{ProductID: p.ID(), Name: p.Name(), Price: p.BasePrice()}
	o, err := order.NewOrder(acc.ID(), item, cmd.Fulfillment(), address, h.now())
	if err != nil {
		return nil, err
	}

	id, err := h.orders.Insert(ctx, o)
	if err != nil {
		return nil, err
	}

	if _, err = h.accounts.Update(ctx, acc.ID(), func(a *account.Account) error {
		return a.AddLoyaltyPoints(item.Price.Units())
	}); err != nil {
		return nil, err
	}

	return h.orders.Get(ctx, id)
}
