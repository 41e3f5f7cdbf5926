package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/catalog-api/internal/config"
	"github.com/phrazzld/catalog-api/internal/paging"
	"github.com/phrazzld/catalog-api/internal/platform/postgres"
	"github.com/phrazzld/catalog-api/internal/service"
	"github.com/phrazzld/catalog-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	productStore store.ProductStore
	adStore      store.AdStore
	setStore     store.SetStore
	setItemStore store.SetItemStore

	// Service interfaces
	setItemService service.SetItemService

	pages *paging.Resolver
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.productStore = postgres.NewPostgresProductStore(db, logger)
	app.adStore = postgres.NewPostgresAdStore(db, logger)
	app.setStore = postgres.NewPostgresSetStore(db, logger)
	app.setItemStore = postgres.NewPostgresSetItemStore(db, logger)

	var err error
	app.setItemService, err = service.NewSetItemService(
		db,
		service.SetItemStores{
			SetItems: app.setItemStore,
			Sets:     app.setStore,
			Products: app.productStore,
			Ads:      app.adStore,
		},
		cfg.Catalog.VerifySetItemRefs,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize set item service: %w", err)
	}

	app.pages = paging.NewResolver(cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit)

	logger.Info("application initialized",
		slog.Int("default_page_limit", cfg.Pagination.DefaultLimit),
		slog.Int("max_page_limit", cfg.Pagination.MaxLimit))
	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", slog.String("error", err.Error()))
	}
}
