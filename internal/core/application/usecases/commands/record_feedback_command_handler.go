package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/core/ports"
)

// RecordFeedbackCommandHandler stores a review on a delivered order and folds
// its rating into the product's running mean.
//
// The order store gates the write: an order that is not Delivered fails with
// InvalidStateError and the product rating is left untouched.
type RecordFeedbackCommandHandler struct {
	orders  FeedbackStore
	catalog ports.CatalogRegistry
}

func NewRecordFeedbackCommandHandler(orders FeedbackStore, catalog ports.CatalogRegistry) RecordFeedbackCommandHandler {
	return RecordFeedbackCommandHandler{
		orders:  orders,
		catalog: catalog,
	}
}

// Handle records the feedback and returns the product's updated rating summary.
func (h *RecordFeedbackCommandHandler) Handle(ctx context.Context, cmd RecordFeedbackCommand) (product.RatingSummary, error) {
	if err := cmd.Validate(); err != nil {
		return product.RatingSummary{}, err
	}

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return product.RatingSummary{}, err
	}

	if err = h.orders.UpdateFeedback(ctx, o.ID(), cmd.Text(), cmd.Rating()); err != nil {
		return product.RatingSummary{}, err
	}

	return h.catalog.Rate(ctx, o.ProductID(), cmd.Rating())
}
