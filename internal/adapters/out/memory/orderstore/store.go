// Package orderstore keeps the session's orders in memory behind a read/write lock.
package orderstore

import (
	"context"
	"fmt"
	"sync"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// Store implements ports.OrderStore. Records are copied on the way in and on
// the way out, so no caller ever holds a pointer the store writes through.
type Store struct {
	mu      sync.RWMutex
	seq     kernel.Sequence
	records []*order.Order
	index   map[kernel.ID]int
}

// NewStore creates an empty order store.
func NewStore() *Store {
	return &Store{index: make(map[kernel.ID]int)}
}

// Insert stores a copy of o under the next identifier and returns that identifier.
// The caller's order is left without an ID.
func (s *Store) Insert(ctx context.Context, o *order.Order) (kernel.ID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := o.Validate(); err != nil {
		return 0, err
	}
	if o.ID().IsAssigned() {
		return 0, errs.NewInvalidStateErrorWithCause("order", fmt.Errorf("order #%s is already stored", o.ID()))
	}

	record := o.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.seq.Next()
	if err := record.AssignID(id); err != nil {
		return 0, err
	}
	s.index[id] = len(s.records)
	s.records = append(s.records, record)

	return id, nil
}

// ListAll returns copies of every order in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]*order.Order, error) {
	return s.list(ctx, func(*order.Order) bool { return true })
}

// ListByAccount returns copies of the account's orders in insertion order.
func (s *Store) ListByAccount(ctx context.Context, accountID kernel.ID) ([]*order.Order, error) {
	return s.list(ctx, func(o *order.Order) bool { return o.AccountID() == accountID })
}

// Get returns a copy of one order.
func (s *Store) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.find(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return record.Clone(), nil
}

// UpdateStatus advances the stored order to status.
func (s *Store) UpdateStatus(ctx context.Context, id kernel.ID, status order.Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.find(id)
	if !ok {
		return errs.NewInvalidStateErrorWithCause("order", errs.NewObjectNotFoundError("order", id))
	}
	return record.AdvanceTo(status)
}

// UpdateFeedback records a review on the stored order. The record is modified
// only when the order accepts the feedback.
func (s *Store) UpdateFeedback(ctx context.Context, id kernel.ID, text string, rating kernel.Rating) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.find(id)
	if !ok {
		return errs.NewObjectNotFoundError("order", id)
	}
	return record.RecordFeedback(text, rating)
}

// Len returns the number of stored orders.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) list(ctx context.Context, keep func(*order.Order) bool) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]*order.Order, 0, len(s.records))
	for _, record := range s.records {
		if keep(record) {
			snapshot = append(snapshot, record.Clone())
		}
	}
	return snapshot, nil
}

// find must be called with s.mu held.
func (s *Store) find(id kernel.ID) (*order.Order, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.records[i], true
}
