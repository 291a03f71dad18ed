package http

import (
	"errors"
	"net/http"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/generated/servers"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It is a read-only view over the session's query handlers.
type Server struct {
	getProductsHandler      queries.GetProductsQueryHandler
	getOrdersHandler        queries.GetOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getNotificationsHandler queries.GetNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	getProductsHandler queries.GetProductsQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
) *Server {
	return &Server{
		getProductsHandler:      getProductsHandler,
		getOrdersHandler:        getOrdersHandler,
		getOrderHandler:         getOrderHandler,
		getNotificationsHandler: getNotificationsHandler,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetProducts handles GET /api/v1/products - lists the catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve products",
		})
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = servers.Product{
			Id:          int64(p.ID),
			Name:        p.Name,
			Crust:       p.Crust,
			Sauce:       p.Sauce,
			Cheese:      p.Cheese,
			Toppings:    p.Toppings,
			Price:       p.BasePrice.String(),
			Rating:      p.Rating.Average,
			RatingCount: p.Rating.Count,
		}
		if response[i].Toppings == nil {
			response[i].Toppings = []string{}
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/v1/orders - lists every order.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId} - reads one order.
func (s *Server) GetOrder(ctx echo.Context, orderId int64) error {
	query, err := queries.NewGetOrderQuery(kernel.ID(orderId))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// GetNotifications handles GET /api/v1/notifications - reads the notification log.
func (s *Server) GetNotifications(ctx echo.Context, params servers.GetNotificationsParams) error {
	var since uint64
	if params.Since != nil && *params.Since > 0 {
		since = uint64(*params.Since)
	}

	entries, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), queries.NewGetNotificationsQuery(since))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve notifications",
		})
	}

	response := make([]servers.Notification, len(entries))
	for i, e := range entries {
		response[i] = servers.Notification{
			Seq:  int64(e.Seq),
			At:   e.At,
			Text: e.Text,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func toOrder(o queries.OrderResponse) servers.Order {
	order := servers.Order{
		Id:          int64(o.ID),
		AccountId:   int64(o.AccountID),
		ProductId:   int64(o.ProductID),
		ProductName: o.ProductName,
		Price:       o.Price.String(),
		Fulfillment: servers.OrderFulfillment(o.Fulfillment.String()),
		Destination: o.Destination,
		Status:      servers.OrderStatus(o.Status.String()),
		CreatedAt:   o.CreatedAt,
		Feedback:    o.Feedback,
	}
	if o.Rating.IsSet() {
		rating := int(o.Rating)
		order.Rating = &rating
	}
	return order
}
