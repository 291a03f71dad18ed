package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderLifecycleJob *OrderLifecycleJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(tickHandler TickHandler, tickInterval time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderLifecycleJob: NewOrderLifecycleJob(tickHandler, tickInterval, logger),
	}
}

// StartAll starts all scheduled jobs under ctx.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll(ctx context.Context) error {
	if err := jm.orderLifecycleJob.Start(ctx); err != nil {
		return fmt.Errorf("failed to start order lifecycle job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones until ctx ends.
func (jm *JobManager) StopAll(ctx context.Context) error {
	return jm.orderLifecycleJob.Stop(ctx)
}
