package commands_test

import (
	"testing"
	"time"

	"pizzeria/internal/adapters/out/memory/catalogrepo"
	"pizzeria/internal/adapters/out/memory/orderstore"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRecordFeedbackCommand(t *testing.T) {
	t.Run("should trim text", func(t *testing.T) {
		cmd, err := commands.NewRecordFeedbackCommand(1, "  great ", 5)

		require.NoError(t, err)
		assert.Equal(t, "great", cmd.Text())
		assert.Equal(t, kernel.Rating(5), cmd.Rating())
	})

	t.Run("should reject out of range rating", func(t *testing.T) {
		_, err := commands.NewRecordFeedbackCommand(1, "great", 6)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRecordFeedbackCommandHandler_Handle_DeliveredOrder(t *testing.T) {
	ctx := t.Context()
	store := orderstore.NewStore()
	catalog := catalogrepo.NewRegistry()

	p, err := product.NewProduct("Pepperoni", product.Recipe{Crust: "Thin", Sauce: "Tomato", Cheese: "Mozzarella"}, kernel.MustMoney(12))
	require.NoError(t, err)
	productID, err := catalog.Add(ctx, p)
	require.NoError(t, err)

	item := order.Item{ProductID: productID, Name: "Pepperoni", Price: kernel.MustMoney(12)}
	o, err := order.NewOrder(1, item, order.Pickup, "", time.Now())
	require.NoError(t, err)
	orderID, err := store.Insert(ctx, o)
	require.NoError(t, err)
	for _, next := range order.Lifecycle[1:] {
		require.NoError(t, store.UpdateStatus(ctx, orderID, next))
	}

	cmd, err := commands.NewRecordFeedbackCommand(orderID, "great", 5)
	require.NoError(t, err)

	h := commands.NewRecordFeedbackCommandHandler(store, catalog)
	summary, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, product.RatingSummary{Average: 5.0, Count: 1}, summary)

	stored, err := store.Get(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, "great", stored.Feedback())
	assert.Equal(t, kernel.Rating(5), stored.Rating())
}

func TestRecordFeedbackCommandHandler_Handle_NotDeliveredLeavesRatingAlone(t *testing.T) {
	ctx := t.Context()
	o := newStoredOrder(t, 4, 1, 12)

	store := new(MockOrderStore)
	store.On("Get", ctx, kernel.ID(4)).Return(o, nil)
	store.On("UpdateFeedback", ctx, kernel.ID(4), "great", kernel.Rating(5)).
		Return(errs.NewInvalidStateError("order")).Once()

	catalog := new(MockCatalogRegistry)

	cmd, _ := commands.NewRecordFeedbackCommand(4, "great", 5)
	h := commands.NewRecordFeedbackCommandHandler(store, catalog)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	catalog.AssertNotCalled(t, "Rate", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordFeedbackCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	store := new(MockOrderStore)
	store.On("Get", ctx, kernel.ID(4)).Return(nil, errs.NewObjectNotFoundError("order", kernel.ID(4)))

	cmd, _ := commands.NewRecordFeedbackCommand(4, "", 3)
	h := commands.NewRecordFeedbackCommandHandler(store, new(MockCatalogRegistry))
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	store.AssertNotCalled(t, "UpdateFeedback", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
