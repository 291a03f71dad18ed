// Package jobs provides scheduled background tasks for the ordering engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderLifecycleJob - Runs every tick interval (10s by default) and moves every
// open order one status forward: Received, Preparing, Baking, OutForDelivery, Delivered.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(advanceOrdersHandler, cfg.TickInterval, logger)
//
//	if err := jobManager.StartAll(ctx); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Wait for an in-flight tick on shutdown
//	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
//	defer cancel()
//	_ = jobManager.StopAll(shutdownCtx)
//
// # Scheduling
//
// The first tick runs immediately; later ticks follow at a constant delay. The cron chain
// recovers panics and skips a tick while the previous one is still running, so ticks never
// overlap and the ticker stays the single writer of order status.
//
// # Error Handling
//
// - Faults on a single order are isolated by the tick handler and appear in the notification log
// - A tick abandoned on shutdown is logged at info level
// - Any other tick error is logged and counted, and the next tick runs as scheduled
package jobs
