package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pizzeria/internal/core/domain/model/notification"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// TickReport summarizes one lifecycle tick.
type TickReport struct {
	// Snapshot is the number of orders in the store when the tick started.
	Snapshot int
	// Pending is the number of non-terminal orders the tick reached.
	Pending int
	// Advanced is the number of orders moved one step forward.
	Advanced int
	// Failed is the number of orders whose update raised an error or panic.
	Failed int
	// Abandoned is true when cancellation stopped the tick early.
	Abandoned bool
	// Duration is the wall time of the tick.
	Duration time.Duration
}

// AdvanceOrdersCommandHandler runs one lifecycle tick over a snapshot of the order store.
//
// Processing rules:
//   - Orders inserted after the snapshot are picked up by a later tick
//   - Each non-terminal order is advanced exactly one step and announced as
//     "Order #<id> | <product> | <status> | <destination>"
//   - A failure or panic on one order is logged, appended to the notification log
//     as "Order #<id> update failed: <reason>" and does not stop the remaining orders
//   - Cancellation is checked between orders; already advanced orders stay advanced
//
// Example:
//
//	handler := NewAdvanceOrdersCommandHandler(store, notifications, logger)
//	report, err := handler.Handle(ctx, NewAdvanceOrdersCommand())
type AdvanceOrdersCommandHandler struct {
	orders        LifecycleStore
	notifications ports.NotificationLog
	logger        *slog.Logger
}

// NewAdvanceOrdersCommandHandler creates a tick handler.
func NewAdvanceOrdersCommandHandler(
	orders LifecycleStore,
	notifications ports.NotificationLog,
	logger *slog.Logger,
) AdvanceOrdersCommandHandler {
	return AdvanceOrdersCommandHandler{
		orders:        orders,
		notifications: notifications,
		logger:        logger.With("component", "AdvanceOrdersCommandHandler"),
	}
}

// Handle processes one tick. It returns an error only when the snapshot cannot
// be taken or the context is cancelled; per-order failures are in the report.
func (h *AdvanceOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrdersCommand,
) (report TickReport, err error) {
	if err = cmd.Validate(); err != nil {
		return report, err
	}

	start := time.Now()
	defer func() { report.Duration = time.Since(start) }()

	snapshot, err := h.orders.ListAll(ctx)
	if err != nil {
		return report, err
	}
	report.Snapshot = len(snapshot)

	for i, o := range snapshot {
		if o.Status().IsTerminal() {
			continue
		}

		if err = ctx.Err(); err != nil {
			report.Abandoned = true
			h.logger.WarnContext(ctx, "tick abandoned",
				"advanced", report.Advanced, "remaining", countPending(snapshot[i:]))
			return report, err
		}
		report.Pending++

		if err = h.advance(ctx, o); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				report.Abandoned = true
				return report, ctxErr
			}
			report.Failed++
			h.recordFault(ctx, o, err)
			continue
		}
		report.Advanced++
	}

	return report, nil
}

func countPending(orders []*order.Order) int {
	n := 0
	for _, o := range orders {
		if !o.Status().IsTerminal() {
			n++
		}
	}
	return n
}

// advance moves one order forward. Panics are converted to errors so the
// caller can isolate them.
func (h *AdvanceOrdersCommandHandler) advance(ctx context.Context, o *order.Order) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	next := o.Status().Next()
	if err = h.orders.UpdateStatus(ctx, o.ID(), next); err != nil {
		return err
	}

	// o is the snapshot copy; bring it in line with the store for the summary.
	if err = o.AdvanceTo(next); err != nil {
		return err
	}

	if _, err = h.notifications.Append(ctx, o.Summary()); err != nil {
		return fmt.Errorf("status advanced to %s but notification failed: %w", next, err)
	}
	return nil
}

func (h *AdvanceOrdersCommandHandler) recordFault(ctx context.Context, o *order.Order, cause error) {
	h.logger.ErrorContext(ctx, "failed to advance order",
		"order_id", o.ID().String(),
		"status", o.Status().String(),
		"error", cause)

	if _, err := h.notifications.Append(ctx, notification.OrderUpdateFailed(o.ID(), cause)); err != nil {
		h.logger.ErrorContext(ctx, "failed to record order fault", "order_id", o.ID().String(), "error", err)
	}
}
