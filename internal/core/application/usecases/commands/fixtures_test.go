package commands_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

const colomboAddress = "Colombo 3 - Kollupitiya, Galle Rd, 12"

func newAccount(t *testing.T, id kernel.ID) *account.Account {
	t.Helper()
	contact, err := kernel.NewContactNumber("0771234567")
	require.NoError(t, err)
	acc, err := account.NewAccount("Nimal", contact)
	require.NoError(t, err)
	require.NoError(t, acc.AssignID(id))
	return acc
}

func newProduct(t *testing.T, id kernel.ID, name string, price float64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(name, product.Recipe{
		Crust: "Thin", Sauce: "Tomato", Cheese: "Mozzarella", Toppings: []string{"Pepperoni"},
	}, kernel.MustMoney(price))
	require.NoError(t, err)
	require.NoError(t, p.AssignID(id))
	return p
}

func newStoredOrder(t *testing.T, id, accountID kernel.ID, price float64) *order.Order {
	t.Helper()
	item := order.Item{ProductID: 2, Name: "Pepperoni", Price: kernel.MustMoney(price)}
	o, err := order.NewOrder(accountID, item, order.Delivery, colomboAddress, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.AssignID(id))
	return o
}
