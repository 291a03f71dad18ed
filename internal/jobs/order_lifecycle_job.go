package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/observability"

	"github.com/labstack/gommon/log"
	"github.com/robfig/cron/v3"
)

// TickHandler runs one lifecycle tick.
type TickHandler interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrdersCommand) (commands.TickReport, error)
}

// OrderLifecycleJob advances every open order one status per interval.
// The first tick runs as soon as the job starts. A tick that outlasts the
// interval causes the next one to be skipped rather than run concurrently.
type OrderLifecycleJob struct {
	handler  TickHandler
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// NewOrderLifecycleJob creates the job. Panics inside a tick are recovered by
// the cron chain and reported through the gommon logger.
func NewOrderLifecycleJob(handler TickHandler, interval time.Duration, logger *slog.Logger) *OrderLifecycleJob {
	cronLogger := cron.PrintfLogger(log.New("cron"))

	return &OrderLifecycleJob{
		handler:  handler,
		interval: interval,
		cron: cron.New(
			cron.WithLogger(cronLogger),
			// Recover must run inside SkipIfStillRunning, which only releases its
			// slot when the wrapped job returns normally.
			cron.WithChain(cron.SkipIfStillRunning(cronLogger), cron.Recover(cronLogger)),
		),
		logger: logger.With("component", "order_lifecycle_job"),
	}
}

// Start schedules the ticks. Ticks run under ctx; cancelling it makes the
// in-flight tick stop between orders.
func (j *OrderLifecycleJob) Start(ctx context.Context) error {
	if j.interval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", j.interval)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cancel != nil {
		return errors.New("order lifecycle job already started")
	}
	j.ctx, j.cancel = context.WithCancel(ctx)

	j.cron.Schedule(&everyInterval{interval: j.interval}, cron.FuncJob(j.tick))
	j.cron.Start()

	j.logger.InfoContext(ctx, "Order lifecycle job started", "interval", j.interval.String())
	return nil
}

// Stop stops scheduling and waits for an in-flight tick. If ctx ends first
// the tick is cancelled and ctx's error returned.
func (j *OrderLifecycleJob) Stop(ctx context.Context) error {
	j.mu.Lock()
	cancel := j.cancel
	j.mu.Unlock()
	if cancel == nil {
		return nil
	}

	done := j.cron.Stop()
	select {
	case <-done.Done():
		cancel()
		j.logger.InfoContext(ctx, "Order lifecycle job stopped")
		return nil
	case <-ctx.Done():
		cancel()
		<-done.Done()
		j.logger.WarnContext(ctx, "Order lifecycle job stopped before in-flight tick finished", "error", ctx.Err())
		return ctx.Err()
	}
}

func (j *OrderLifecycleJob) tick() {
	j.mu.Lock()
	ctx := j.ctx
	j.mu.Unlock()

	report, err := j.handler.Handle(ctx, commands.NewAdvanceOrdersCommand())

	switch {
	case report.Abandoned:
		observability.RecordTick(observability.TickAbandoned, report.Advanced, report.Failed, report.Duration)
		j.logger.InfoContext(ctx, "Lifecycle tick abandoned", "advanced", report.Advanced, "error", err)
	case err != nil:
		observability.RecordTick(observability.TickFailed, report.Advanced, report.Failed, report.Duration)
		j.logger.ErrorContext(ctx, "Lifecycle tick failed", "error", err)
	default:
		observability.RecordTick(observability.TickCompleted, report.Advanced, report.Failed, report.Duration)
		j.logger.DebugContext(ctx, "Lifecycle tick completed",
			"orders", report.Snapshot,
			"advanced", report.Advanced,
			"failed", report.Failed,
			"duration", report.Duration.String())
	}
}

// everyInterval fires once immediately and then every interval. Unlike
// cron.Every it keeps sub-second intervals.
type everyInterval struct {
	interval time.Duration
	started  bool
}

func (s *everyInterval) Next(t time.Time) time.Time {
	if !s.started {
		s.started = true
		return t
	}
	return t.Add(s.interval)
}
