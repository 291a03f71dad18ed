package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// GetOrdersQueryHandler reads order snapshots. Results never reflect a
// half-applied tick because the store hands out copies taken under its lock.
type GetOrdersQueryHandler struct {
	orders ports.OrderStore
}

func NewGetOrdersQueryHandler(orders ports.OrderStore) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

// Handle returns the matching orders in insertion order.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		orders []*order.Order
		err    error
	)
	if query.AccountID().IsAssigned() {
		orders, err = h.orders.ListByAccount(ctx, query.AccountID())
	} else {
		orders, err = h.orders.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, newOrderResponse(o))
	}
	return result, nil
}

// GetOrderQueryHandler reads one order.
type GetOrderQueryHandler struct {
	orders ports.OrderStore
}

func NewGetOrderQueryHandler(orders ports.OrderStore) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns ObjectNotFoundError for unknown identifiers.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	return newOrderResponse(o), nil
}
