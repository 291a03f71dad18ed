package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"pizzeria/api"
	"pizzeria/internal/adapters/in/console"
	httpin "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/memory/accountrepo"
	"pizzeria/internal/adapters/out/memory/catalogrepo"
	"pizzeria/internal/adapters/out/memory/notificationlog"
	"pizzeria/internal/adapters/out/memory/orderstore"
	"pizzeria/internal/adapters/out/memory/promotionrepo"
	"pizzeria/internal/adapters/out/seed"
	"pizzeria/internal/core/application/session"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/jobs"

	"github.com/labstack/echo/v4"
)

// CompositionRoot owns the session-scoped stores and builds everything that
// works on them.
type CompositionRoot struct {
	config Config
	logger *slog.Logger
	data   *seed.Data

	orders        *orderstore.Store
	accounts      *accountrepo.Registry
	catalog       *catalogrepo.Registry
	notifications *notificationlog.Log
	promotions    *promotionrepo.Catalog

	coordinator *session.Coordinator
}

// NewCompositionRoot loads the seed and fills the catalog.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	data, err := seed.Load(config.SeedFile)
	if err != nil {
		return nil, err
	}

	catalog := catalogrepo.NewRegistry()
	if err = data.Populate(ctx, catalog); err != nil {
		return nil, fmt.Errorf("failed to populate catalog: %w", err)
	}
	promotions, err := data.PromotionList()
	if err != nil {
		return nil, fmt.Errorf("failed to load promotions: %w", err)
	}

	root := &CompositionRoot{
		config:        config,
		logger:        logger,
		data:          data,
		orders:        orderstore.NewStore(),
		accounts:      accountrepo.NewRegistry(),
		catalog:       catalog,
		notifications: notificationlog.NewLog(),
		promotions:    promotionrepo.NewCatalog(promotions),
	}
	root.coordinator = root.createCoordinator()
	return root, nil
}

// Coordinator is shared by every presentation built from this root.
func (c *CompositionRoot) Coordinator() *session.Coordinator {
	return c.coordinator
}

func (c *CompositionRoot) createCoordinator() *session.Coordinator {
	return session.NewCoordinator(session.Dependencies{
		Orders:        c.orders,
		Accounts:      c.accounts,
		Catalog:       c.catalog,
		Notifications: c.notifications,
		Promotions:    c.promotions,
		Options:       c.data.ProductOptions(),
		Areas:         c.data.Areas,
		Logger:        c.logger,
	})
}

func (c *CompositionRoot) CreateAdvanceOrdersCommandHandler() *commands.AdvanceOrdersCommandHandler {
	handler := commands.NewAdvanceOrdersCommandHandler(c.orders, c.notifications, c.logger)
	return &handler
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAdvanceOrdersCommandHandler(), c.config.TickInterval, c.logger)
}

func (c *CompositionRoot) CreateConsoleSession(in io.Reader, out io.Writer) *console.Session {
	return console.NewSession(c.coordinator, in, out, c.logger)
}

// CreateHTTPServer builds the read-only status server over the same stores.
func (c *CompositionRoot) CreateHTTPServer(ctx context.Context) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(
		queries.NewGetProductsQueryHandler(c.catalog),
		queries.NewGetOrdersQueryHandler(c.orders),
		queries.NewGetOrderQueryHandler(c.orders),
		queries.NewGetNotificationsQueryHandler(c.notifications),
	)
	return httpin.NewRouter(server, doc, c.logger)
}
