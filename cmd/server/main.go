// Package main implements the entry point for the catalog API server,
// which serves CRUD endpoints for products, ads, sets and set items.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/catalog-api/internal/config"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/platform/postgres"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// migrateOnStartKey is the viper key bound to the serve command's --migrate flag.
const migrateOnStartKey = "migrate"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Every subcommand shares one viper
// instance so that bound flags layer on top of environment and file config.
func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:          "catalog-api",
		Short:        "Catalog API server for products, ads, sets and set items",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(v), newMigrateCmd(v))
	return root
}

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, v)
		},
	}

	cmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
	cmd.Flags().Bool("migrate", false, "apply pending database migrations before serving")
	// Lookup cannot fail for flags defined just above.
	_ = v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = v.BindPFlag(migrateOnStartKey, cmd.Flags().Lookup("migrate"))

	return cmd
}

func newMigrateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down|status|version|reset]",
		Short: "Manage the database schema",
		ValidArgs: []string{
			postgres.MigrateUp,
			postgres.MigrateDown,
			postgres.MigrateStatus,
			postgres.MigrateVersion,
			postgres.MigrateReset,
		},
		Args: cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), v, args[0])
		},
	}
}

// loadConfigAndLogger loads configuration and sets up structured logging
// using the configured log level.
func loadConfigAndLogger(v *viper.Viper) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("verify_set_item_refs", cfg.Catalog.VerifySetItemRefs))

	return cfg, l, nil
}

// runServer connects to the database, optionally migrates it, and serves
// HTTP until ctx is canceled.
func runServer(ctx context.Context, v *viper.Viper) error {
	cfg, l, err := loadConfigAndLogger(v)
	if err != nil {
		return err
	}

	db, err := postgres.Open(ctx, cfg.Database, l)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if v.GetBool(migrateOnStartKey) {
		if err := postgres.Migrate(ctx, db, postgres.MigrateUp, l); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}

func runMigrations(ctx context.Context, v *viper.Viper, command string) error {
	cfg, l, err := loadConfigAndLogger(v)
	if err != nil {
		return err
	}

	db, err := postgres.Open(ctx, cfg.Database, l)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			l.Error("failed to close database connection", slog.String("error", err.Error()))
		}
	}()

	return postgres.Migrate(ctx, db, command, l)
}
