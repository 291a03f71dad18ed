package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	acc := newAccount(t, 1)
	require.NoError(t, acc.UpdateAddress(colomboAddress))
	stored := newStoredOrder(t, 7, 1, 12)

	accounts := new(MockAccountRegistry)
	accounts.On("Get", ctx, kernel.ID(1)).Return(acc, nil).Once()
	accounts.On("Update", ctx, kernel.ID(1), mock.Anything).Return(acc, nil).Once()

	catalog := new(MockCatalogRegistry)
	catalog.On("Get", ctx, kernel.ID(2)).Return(newProduct(t, 2, "Pepperoni", 12), nil).Once()

	store := new(MockOrderStore)
	store.On("Insert", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.Status() == order.Received &&
			o.AccountID() == 1 &&
			o.ProductName() == "Pepperoni" &&
			o.Price() == kernel.MustMoney(12) &&
			o.Address() == colomboAddress
	})).Return(kernel.ID(7), nil).Once()
	store.On("Get", ctx, kernel.ID(7)).Return(stored, nil).Once()

	cmd, err := commands.NewPlaceOrderCommand(1, 2, order.Delivery, "")
	require.NoError(t, err)

	h := commands.NewPlaceOrderCommandHandler(store, accounts, catalog)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(7), o.ID())
	store.AssertExpectations(t)
	accounts.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_AccruesWholeDollars(t *testing.T) {
	ctx := t.Context()
	acc := newAccount(t, 1)

	accounts := new(MockAccountRegistry)
	accounts.On("Get", ctx, kernel.ID(1)).Return(acc, nil)
	accounts.On("Update", ctx, kernel.ID(1), mock.MatchedBy(func(mutate func(*account.Account) error) bool {
		probe := acc.Clone()
		return mutate(probe) == nil && probe.LoyaltyPoints() == 12
	})).Return(acc, nil).Once()

	catalog := new(MockCatalogRegistry)
	catalog.On("Get", ctx, kernel.ID(2)).Return(newProduct(t, 2, "Pepperoni", 12.99), nil)

	store := new(MockOrderStore)
	store.On("Insert", ctx, mock.Anything).Return(kernel.ID(1), nil)
	store.On("Get", ctx, kernel.ID(1)).Return(newStoredOrder(t, 1, 1, 12.99), nil)

	cmd, _ := commands.NewPlaceOrderCommand(1, 2, order.Pickup, "")
	h := commands.NewPlaceOrderCommandHandler(store, accounts, catalog)
	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	accounts.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_AddressNotSet(t *testing.T) {
	ctx := t.Context()

	accounts := new(MockAccountRegistry)
	accounts.On("Get", ctx, kernel.ID(1)).Return(newAccount(t, 1), nil)

	catalog := new(MockCatalogRegistry)
	catalog.On("Get", ctx, kernel.ID(2)).Return(newProduct(t, 2, "Pepperoni", 12), nil)

	store := new(MockOrderStore)

	cmd, _ := commands.NewPlaceOrderCommand(1, 2, order.Delivery, "")
	h := commands.NewPlaceOrderCommandHandler(store, accounts, catalog)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAddressIsNotSet)
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()

	accounts := new(MockAccountRegistry)
	accounts.On("Get", ctx, kernel.ID(1)).Return(newAccount(t, 1), nil)

	catalog := new(MockCatalogRegistry)
	catalog.On("Get", ctx, kernel.ID(9)).Return(nil, errs.NewObjectNotFoundError("product", kernel.ID(9)))

	store := new(MockOrderStore)

	cmd, _ := commands.NewPlaceOrderCommand(1, 9, order.Pickup, "")
	h := commands.NewPlaceOrderCommandHandler(store, accounts, catalog)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	h := commands.NewPlaceOrderCommandHandler(new(MockOrderStore), new(MockAccountRegistry), new(MockCatalogRegistry))

	_, err := h.Handle(t.Context(), commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}
