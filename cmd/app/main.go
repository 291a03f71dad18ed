package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizzeria/cmd"
	httpin "pizzeria/internal/adapters/in/http"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

type options struct {
	envFile      string
	tickInterval time.Duration
	httpEnabled  bool
	httpPort     string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("pizzeria: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "pizzeria",
		Short: "Interactive pizza ordering with a background order lifecycle",
		Long: `Starts an interactive ordering session on the terminal.

Placed orders advance one status per tick until they are delivered. The
optional HTTP status server exposes products, orders and notifications
read-only, together with Prometheus metrics and Swagger UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(opts.envFile)
			if err != nil {
				return err
			}
			applyFlags(c, opts, &config)
			if err = config.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, c, config)
		},
	}

	root.Flags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load, ignored when missing")
	root.Flags().DurationVar(&opts.tickInterval, "tick-interval", 0, "lifecycle tick interval (overrides "+cmd.EnvTickInterval+")")
	root.Flags().BoolVar(&opts.httpEnabled, "http", false, "serve the HTTP status API (overrides "+cmd.EnvHTTPEnabled+")")
	root.Flags().StringVar(&opts.httpPort, "port", "", "HTTP status API port (overrides "+cmd.EnvHTTPPort+")")

	return root
}

// applyFlags lets explicitly set flags win over the environment.
func applyFlags(c *cobra.Command, opts *options, config *cmd.Config) {
	if c.Flags().Changed("tick-interval") {
		config.TickInterval = opts.tickInterval
	}
	if c.Flags().Changed("http") {
		config.HTTPEnabled = opts.httpEnabled
	}
	if c.Flags().Changed("port") {
		config.HTTPPort = opts.httpPort
	}
}

func run(ctx context.Context, c *cobra.Command, config cmd.Config) error {
	// The menu owns stdout.
	logger := slog.New(slog.NewTextHandler(c.ErrOrStderr(), &slog.HandlerOptions{Level: config.LogLevel}))

	app, err := cmd.NewCompositionRoot(ctx, config, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobManager := app.CreateJobManager()
	if err = startJobs(ctx, jobManager); err != nil {
		return err
	}

	httpDone := make(chan error, 1)
	if config.HTTPEnabled {
		e, httpErr := app.CreateHTTPServer(ctx)
		if httpErr != nil {
			return errors.Join(httpErr, stopJobs(jobManager, config.ShutdownTimeout))
		}
		logger.Info("http status server listening", "addr", config.HTTPAddr())
		go func() {
			runErr := httpin.Run(ctx, e, config.HTTPAddr(), config.ShutdownTimeout)
			if runErr != nil {
				logger.Error("http status server stopped", "error", runErr)
			}
			httpDone <- runErr
		}()
	} else {
		close(httpDone)
	}

	sessionErr := app.CreateConsoleSession(c.InOrStdin(), c.OutOrStdout()).Run(ctx)

	cancel()
	return errors.Join(sessionErr, <-httpDone, stopJobs(jobManager, config.ShutdownTimeout))
}

type jobRunner interface {
	StartAll(ctx context.Context) error
	StopAll(ctx context.Context) error
}

// startJobs detaches the jobs from ctx's cancellation. Only stopJobs ends
// them, so an in-flight tick can finish within the shutdown timeout.
func startJobs(ctx context.Context, jobManager jobRunner) error {
	return jobManager.StartAll(context.WithoutCancel(ctx))
}

func stopJobs(jobManager jobRunner, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := jobManager.StopAll(ctx); err != nil {
		return fmt.Errorf("stopping jobs: %w", err)
	}
	return nil
}
