// Package notificationlog is the in-memory, append-only notification log.
package notificationlog

import (
	"context"
	"slices"
	"sync"
	"time"

	"pizzeria/internal/core/domain/model/notification"
	"pizzeria/internal/pkg/errs"
)

// Log implements ports.NotificationLog. Entries are values, so readers get
// copies by construction.
type Log struct {
	mu      sync.RWMutex
	entries []notification.Entry
	now     func() time.Time
}

// Option configures a Log.
type Option func(*Log)

// WithClock overrides the time source used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

// NewLog creates an empty log.
func NewLog(opts ...Option) *Log {
	l := &Log{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append adds text as the next entry.
func (l *Log) Append(ctx context.Context, text string) (notification.Entry, error) {
	if err := ctx.Err(); err != nil {
		return notification.Entry{}, err
	}
	if text == "" {
		return notification.Entry{}, errs.NewValueIsRequiredError("notification text")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := notification.Entry{
		Seq:  uint64(len(l.entries)) + 1,
		At:   l.now(),
		Text: text,
	}
	l.entries = append(l.entries, entry)
	return entry, nil
}

// All returns every entry in append order.
func (l *Log) All(ctx context.Context) ([]notification.Entry, error) {
	return l.Since(ctx, 0)
}

// Since returns entries appended after the entry numbered seq.
func (l *Log) Since(ctx context.Context, seq uint64) ([]notification.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if seq >= uint64(len(l.entries)) {
		return []notification.Entry{}, nil
	}
	return slices.Clone(l.entries[seq:]), nil
}
