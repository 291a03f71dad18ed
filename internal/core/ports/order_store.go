// Package ports defines the store and registry contracts of the pizzeria core.
// These interfaces establish contracts between the application layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderStore owns every order created in the session.
// All methods are safe for concurrent use, and every order handed out is a copy:
// callers never share a record with the store or with each other.
//
// The status field has a single writer (the lifecycle ticker, through UpdateStatus)
// and feedback/rating have a single writer (the session, through UpdateFeedback).
type OrderStore interface {
	// Insert stores a new order and returns the identifier assigned to it.
	// Identifiers are strictly increasing in insertion order.
	Insert(ctx context.Context, o *order.Order) (kernel.ID, error)

	// ListAll returns a point-in-time snapshot of every order in insertion order.
	// Orders inserted after the call returns are not in the snapshot.
	ListAll(ctx context.Context) ([]*order.Order, error)

	// ListByAccount is ListAll filtered by owning account.
	ListByAccount(ctx context.Context, accountID kernel.ID) ([]*order.Order, error)

	// Get returns one order, or ObjectNotFoundError if absent.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// UpdateStatus moves an order to status, which must be the immediate successor
	// of its current one. Absent orders, terminal orders and any other target
	// status fail with InvalidStateError.
	//
	// Example:
	//   for _, o := range snapshot {
	//       if err := store.UpdateStatus(ctx, o.ID(), o.Status().Next()); err != nil {
	//           // isolate and report, then continue with the next order
	//       }
	//   }
	UpdateStatus(ctx context.Context, id kernel.ID, status order.Status) error

	// UpdateFeedback records the customer's review on a Delivered order.
	// Absent orders fail with ObjectNotFoundError; orders that are not Delivered
	// fail with InvalidStateError and are left unchanged.
	UpdateFeedback(ctx context.Context, id kernel.ID, text string, rating kernel.Rating) error
}
