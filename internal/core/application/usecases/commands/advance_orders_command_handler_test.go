package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"pizzeria/internal/adapters/out/memory/notificationlog"
	"pizzeria/internal/adapters/out/memory/orderstore"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/notification"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tick(t *testing.T, h commands.AdvanceOrdersCommandHandler) commands.TickReport {
	t.Helper()
	report, err := h.Handle(t.Context(), commands.NewAdvanceOrdersCommand())
	require.NoError(t, err)
	return report
}

func TestAdvanceOrdersCommandHandler_DeliveryScenario(t *testing.T) {
	ctx := t.Context()
	store := orderstore.NewStore()
	log := notificationlog.NewLog()
	h := commands.NewAdvanceOrdersCommandHandler(store, log, discardLogger())

	item := order.Item{ProductID: 2, Name: "Pepperoni", Price: kernel.MustMoney(12)}
	o, err := order.NewOrder(1, item, order.Delivery, colomboAddress, time.Now())
	require.NoError(t, err)
	id, err := store.Insert(ctx, o)
	require.NoError(t, err)

	expected := []order.Status{order.Preparing, order.Baking, order.OutForDelivery, order.Delivered, order.Delivered}
	for i, status := range expected {
		report := tick(t, h)

		stored, getErr := store.Get(ctx, id)
		require.NoError(t, getErr)
		assert.Equal(t, status, stored.Status(), "after tick %d", i+1)
		assert.Equal(t, 1, report.Snapshot)
		if i < 4 {
			assert.Equal(t, 1, report.Advanced)
		} else {
			assert.Zero(t, report.Pending, "terminal orders are skipped")
		}
	}

	entries, err := log.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "Order #1 | Pepperoni | Preparing | "+colomboAddress, entries[0].Text)
	assert.Equal(t, "Order #1 | Pepperoni | Delivered | "+colomboAddress, entries[3].Text)
}

func TestAdvanceOrdersCommandHandler_PickupShowsPickupDestination(t *testing.T) {
	ctx := t.Context()
	store := orderstore.NewStore()
	log := notificationlog.NewLog()
	h := commands.NewAdvanceOrdersCommandHandler(store, log, discardLogger())

	item := order.Item{ProductID: 1, Name: "Margherita", Price: kernel.MustMoney(10)}
	o, err := order.NewOrder(1, item, order.Pickup, "", time.Now())
	require.NoError(t, err)
	_, err = store.Insert(ctx, o)
	require.NoError(t, err)

	tick(t, h)

	entries, err := log.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Order #1 | Margherita | Preparing | Pickup", entries[0].Text)
}

func TestAdvanceOrdersCommandHandler_OrderInsertedAfterSnapshotWaitsForNextTick(t *testing.T) {
	ctx := t.Context()
	store := orderstore.NewStore()
	h := commands.NewAdvanceOrdersCommandHandler(store, notificationlog.NewLog(), discardLogger())

	first, err := store.Insert(ctx, newUnassignedOrder(t))
	require.NoError(t, err)
	tick(t, h)

	second, err := store.Insert(ctx, newUnassignedOrder(t))
	require.NoError(t, err)
	stored, err := store.Get(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, order.Received, stored.Status())

	tick(t, h)

	a, err := store.Get(ctx, first)
	require.NoError(t, err)
	b, err := store.Get(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, order.Baking, a.Status())
	assert.Equal(t, order.Preparing, b.Status())
}

func TestAdvanceOrdersCommandHandler_FaultDoesNotStopLaterOrders(t *testing.T) {
	ctx := t.Context()
	failing := newStoredOrder(t, 1, 1, 12)
	healthy := newStoredOrder(t, 2, 1, 12)

	store := new(MockOrderStore)
	store.On("ListAll", ctx).Return([]*order.Order{failing, healthy}, nil).Once()
	store.On("UpdateStatus", ctx, kernel.ID(1), order.Preparing).Return(errors.New("disk on fire")).Once()
	store.On("UpdateStatus", ctx, kernel.ID(2), order.Preparing).Return(nil).Once()

	log := new(MockNotificationLog)
	log.On("Append", ctx, "Order #1 update failed: disk on fire").Return(notification.Entry{Seq: 1}, nil).Once()
	log.On("Append", ctx, "Order #2 | Pepperoni | Preparing | "+colomboAddress).Return(notification.Entry{Seq: 2}, nil).Once()

	h := commands.NewAdvanceOrdersCommandHandler(store, log, discardLogger())
	report, err := h.Handle(ctx, commands.NewAdvanceOrdersCommand())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Pending)
	assert.Equal(t, 1, report.Advanced)
	assert.Equal(t, 1, report.Failed)
	assert.False(t, report.Abandoned)
	store.AssertExpectations(t)
	log.AssertExpectations(t)
}

func TestAdvanceOrdersCommandHandler_PanicIsIsolated(t *testing.T) {
	ctx := t.Context()
	store := new(MockOrderStore)
	store.On("ListAll", ctx).Return([]*order.Order{newStoredOrder(t, 1, 1, 12), newStoredOrder(t, 2, 1, 12)}, nil)
	store.On("UpdateStatus", ctx, kernel.ID(1), order.Preparing).
		Run(func(mock.Arguments) { panic("nil pointer") }).Return(nil).Once()
	store.On("UpdateStatus", ctx, kernel.ID(2), order.Preparing).Return(nil).Once()

	log := new(MockNotificationLog)
	log.On("Append", ctx, "Order #1 update failed: panic: nil pointer").Return(notification.Entry{}, nil).Once()
	log.On("Append", ctx, mock.AnythingOfType("string")).Return(notification.Entry{}, nil).Once()

	h := commands.NewAdvanceOrdersCommandHandler(store, log, discardLogger())
	report, err := h.Handle(ctx, commands.NewAdvanceOrdersCommand())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Advanced)
	store.AssertExpectations(t)
}

func TestAdvanceOrdersCommandHandler_CancelledContextAbandonsTick(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())

	store := new(MockOrderStore)
	store.On("ListAll", ctx).Return([]*order.Order{newStoredOrder(t, 1, 1, 12), newStoredOrder(t, 2, 1, 12)}, nil).Once()
	store.On("UpdateStatus", ctx, kernel.ID(1), order.Preparing).
		Run(func(mock.Arguments) { cancel() }).Return(nil).Once()

	log := new(MockNotificationLog)
	log.On("Append", ctx, mock.AnythingOfType("string")).Return(notification.Entry{}, nil).Once()

	h := commands.NewAdvanceOrdersCommandHandler(store, log, discardLogger())
	report, err := h.Handle(ctx, commands.NewAdvanceOrdersCommand())

	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, report.Abandoned)
	assert.Equal(t, 1, report.Advanced, "orders advanced before cancellation stay advanced")
	store.AssertNotCalled(t, "UpdateStatus", ctx, kernel.ID(2), order.Preparing)
}

func TestAdvanceOrdersCommandHandler_ReportsTickDuration(t *testing.T) {
	ctx := t.Context()
	store := new(MockOrderStore)
	store.On("ListAll", ctx).
		Run(func(mock.Arguments) { time.Sleep(30 * time.Millisecond) }).
		Return([]*order.Order{}, nil).Once()

	h := commands.NewAdvanceOrdersCommandHandler(store, new(MockNotificationLog), discardLogger())
	report, err := h.Handle(ctx, commands.NewAdvanceOrdersCommand())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, report.Duration, 30*time.Millisecond)
}

func TestAdvanceOrdersCommandHandler_AbandonedTickLogsUnreachedOrders(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())

	delivered := newStoredOrder(t, 1, 1, 12)
	for _, status := range order.Lifecycle[1:] {
		require.NoError(t, delivered.AdvanceTo(status))
	}

	store := new(MockOrderStore)
	store.On("ListAll", ctx).Return([]*order.Order{
		delivered, newStoredOrder(t, 2, 1, 12), newStoredOrder(t, 3, 1, 12),
	}, nil).Once()
	store.On("UpdateStatus", ctx, kernel.ID(2), order.Preparing).
		Run(func(mock.Arguments) { cancel() }).Return(nil).Once()

	log := new(MockNotificationLog)
	log.On("Append", ctx, mock.AnythingOfType("string")).Return(notification.Entry{}, nil).Once()

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, nil))
	h := commands.NewAdvanceOrdersCommandHandler(store, log, logger)

	_, err := h.Handle(ctx, commands.NewAdvanceOrdersCommand())

	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, out.String(), "remaining=1", "delivered orders are not remaining work")
}

func TestAdvanceOrdersCommandHandler_SnapshotFailure(t *testing.T) {
	ctx := t.Context()
	store := new(MockOrderStore)
	store.On("ListAll", ctx).Return(nil, errors.New("unavailable")).Once()

	h := commands.NewAdvanceOrdersCommandHandler(store, new(MockNotificationLog), discardLogger())
	_, err := h.Handle(ctx, commands.NewAdvanceOrdersCommand())

	require.EqualError(t, err, "unavailable")
}

func TestAdvanceOrdersCommandHandler_RejectsUnconstructedCommand(t *testing.T) {
	h := commands.NewAdvanceOrdersCommandHandler(new(MockOrderStore), new(MockNotificationLog), discardLogger())

	_, err := h.Handle(t.Context(), commands.AdvanceOrdersCommand{})

	require.ErrorIs(t, err, commands.ErrAdvanceOrdersCommandIsNotConstructed)
}

func newUnassignedOrder(t *testing.T) *order.Order {
	t.Helper()
	item := order.Item{ProductID: 2, Name: "Pepperoni", Price: kernel.MustMoney(12)}
	o, err := order.NewOrder(1, item, order.Delivery, colomboAddress, time.Now())
	require.NoError(t, err)
	return o
}
