package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/notification"
)

// NotificationLog is the append-only list of events shown to customers.
type NotificationLog interface {
	// Append adds an entry stamped with the next sequence number and the current time.
	Append(ctx context.Context, text string) (notification.Entry, error)

	// All returns every entry in append order.
	All(ctx context.Context) ([]notification.Entry, error)

	// Since returns the entries with a sequence number greater than seq.
	Since(ctx context.Context, seq uint64) ([]notification.Entry, error)
}
