package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery or NewGetAccountOrdersQuery constructor",
	)
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrdersQuery lists orders in insertion order, either all of them or
// those of one account.
//
// Example:
//
//	query, _ := NewGetAccountOrdersQuery(accountID)
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Println(o.Summary)
//	}
type GetOrdersQuery struct {
	accountID kernel.ID
	guard     guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query over every order in the store.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetAccountOrdersQuery creates a query over one account's orders.
func NewGetAccountOrdersQuery(accountID kernel.ID) (GetOrdersQuery, error) {
	if err := accountID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{accountID: accountID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// AccountID returns the owner filter; unassigned means all orders.
func (q GetOrdersQuery) AccountID() kernel.ID {
	return q.accountID
}

// GetOrderQuery reads a single order.
type GetOrderQuery struct {
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

// NewGetOrderQuery validates the order identifier.
func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}
