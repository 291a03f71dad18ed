package main

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slowTick struct {
	started  chan struct{}
	finished atomic.Bool
	canceled atomic.Bool
}

func (s *slowTick) Handle(ctx context.Context, _ commands.AdvanceOrdersCommand) (commands.TickReport, error) {
	select {
	case s.started <- struct{}{}:
	default:
	}
	select {
	case <-time.After(200 * time.Millisecond):
		s.finished.Store(true)
		return commands.TickReport{Advanced: 1}, nil
	case <-ctx.Done():
		s.canceled.Store(true)
		return commands.TickReport{Abandoned: true}, ctx.Err()
	}
}

func TestShutdown_InFlightTickFinishes(t *testing.T) {
	tick := &slowTick{started: make(chan struct{}, 1)}
	manager := jobs.NewJobManager(tick, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(t.Context())
	require.NoError(t, startJobs(ctx, manager))

	select {
	case <-tick.started:
	case <-time.After(time.Second):
		t.Fatal("first tick did not start")
	}

	cancel()
	require.NoError(t, stopJobs(manager, 5*time.Second))

	assert.True(t, tick.finished.Load(), "tick runs to completion after the session context ends")
	assert.False(t, tick.canceled.Load())
}

func TestShutdown_TimeoutCancelsTick(t *testing.T) {
	tick := &slowTick{started: make(chan struct{}, 1)}
	manager := jobs.NewJobManager(tick, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, startJobs(t.Context(), manager))
	<-tick.started

	err := stopJobs(manager, 20*time.Millisecond)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, tick.canceled.Load())
}
