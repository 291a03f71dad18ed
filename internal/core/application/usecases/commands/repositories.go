// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: constructor validation, guard check, store calls.
package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// Role interfaces narrow the order store to what each writer may touch.
// The lifecycle ticker is the only status writer and the session is the only
// feedback writer; their handlers depend on disjoint write methods.
type (
	// OrderReader looks single orders up.
	OrderReader interface {
		Get(ctx context.Context, id kernel.ID) (*order.Order, error)
	}

	// LifecycleStore is the part of the order store the lifecycle ticker uses.
	LifecycleStore interface {
		ListAll(ctx context.Context) ([]*order.Order, error)
		UpdateStatus(ctx context.Context, id kernel.ID, status order.Status) error
	}

	// FeedbackStore is the part of the order store feedback recording uses.
	FeedbackStore interface {
		OrderReader
		UpdateFeedback(ctx context.Context, id kernel.ID, text string, rating kernel.Rating) error
	}

	// OrderPlacer is the part of the order store order placement uses.
	OrderPlacer interface {
		OrderReader
		Insert(ctx context.Context, o *order.Order) (kernel.ID, error)
	}
)
