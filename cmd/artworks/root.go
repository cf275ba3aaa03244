package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mmcdole/artworks/internal/adapter"
	"github.com/mmcdole/artworks/internal/adapter/source"
	"github.com/mmcdole/artworks/internal/service"
	"github.com/spf13/cobra"
)

// app holds what every subcommand needs once configuration is loaded
type app struct {
	cfg       *adapter.Config
	logger    *slog.Logger
	catalog   *service.CatalogService
	selection *service.SelectionService
	metrics   *adapter.MetricsServer
}

func newRootCmd() *cobra.Command {
	var configPath, logLevel string
	var browse browseOptions
	a := &app{}

	cmd := &cobra.Command{
		Use:   "artworks",
		Short: "Browse the Art Institute of Chicago collection and select artworks across pages",
		Long: `Artworks pages through the public collection API one page at a time.

Rows can be selected one by one, a page at a time, or by asking for the next N
unselected records, which walks forward through as many pages as it takes.

Running without a subcommand opens the browser.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			return a.setup(configPath, logLevel)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBrowse(cmd, browse)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		fmt.Sprintf("Config file (default %s)", filepath.Join(adapter.GetConfigPath(), "config.yaml")))
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	browse.register(cmd)

	cmd.AddCommand(newBrowseCmd(a))
	cmd.AddCommand(newPageCmd(a))
	cmd.AddCommand(newSelectCmd(a))

	return cmd
}

// setup loads configuration and wires logging, metrics, the remote client and services
func (a *app) setup(configPath, logLevel string) error {
	cfg, err := adapter.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	a.cfg = cfg

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	logger = adapter.WithSession(logger)
	slog.SetDefault(logger)
	a.logger = logger

	logger.Info("starting artworks", "version", Version, "source", cfg.Source.URL)

	a.metrics, err = adapter.StartMetricsServer(cfg.Metrics.Listen, logger)
	if err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}

	repo, err := source.NewClientFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create collection client: %w", err)
	}

	a.catalog = service.NewCatalogService(repo, cfg.Source.PageSize, logger)
	a.selection = service.NewSelectionService(a.catalog, cfg.Source.PageSize, logger)
	return nil
}

func (a *app) close() error {
	if a.logger != nil {
		a.logger.Info("shutting down")
	}
	return a.metrics.Close()
}
