package main

import (
	"database/sql"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
	"github.com/de-tools/chart-atlas/pkg/server"
	"github.com/de-tools/chart-atlas/pkg/services/charts"
	"github.com/de-tools/chart-atlas/pkg/services/config"
	"github.com/de-tools/chart-atlas/pkg/services/session"
	"github.com/de-tools/chart-atlas/pkg/store/sqlite"
	sqlitesession "github.com/de-tools/chart-atlas/pkg/store/sqlite/session"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Chart Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a config file (yaml, json or toml); CHART_ATLAS_* variables override it")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	presets, err := config.NewPresetRegistry(cfg.Presets.Path)
	if err != nil {
		return fmt.Errorf("failed to create preset registry: %w", err)
	}

	opts := session.Options{
		AnimationDelay: cfg.Chart.AnimationDelay,
		Viewport:       domain.Size{Width: cfg.Chart.Width, Height: cfg.Chart.Height},
		Logger:         &logger,
	}

	if cfg.Store.Path != "" {
		db, err := sqlite.NewDB(sqlite.Settings{
			DbPath: cfg.Store.Path,
		})
		if err != nil {
			return fmt.Errorf("failed to create SQLite instance: %w", err)
		}
		defer func(db *sql.DB) {
			if err := db.Close(); err != nil {
				logger.Error().Err(err).Msg("failed to close database")
			}
		}(db)

		sessionStore, err := sqlitesession.NewStore(db)
		if err != nil {
			return fmt.Errorf("failed to create session store: %w", err)
		}
		opts.Store = sessionStore
		logger.Info().Msgf("Sessions are persisted to `%s`.", cfg.Store.Path)
	}

	registry := charts.DefaultRegistry()
	manager := session.NewManager(registry, opts)
	if err := manager.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize session manager: %w", err)
	}

	logger.Info().Msgf("Found the following charts:")
	for _, d := range registry.List() {
		logger.Info().Msgf("Name: `%s`, Mark: `%s`, Gesture: `%s`", d.Kind, d.Mark, d.Gesture)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		Dependencies: server.Dependencies{
			Registry: registry,
			Sessions: manager,
			Presets:  presets,
		},
	})

	return webAPI.Start(ctx)
}
