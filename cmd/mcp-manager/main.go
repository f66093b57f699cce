package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/mcp-manager/internal/adapter"
	"github.com/MKhiriev/mcp-manager/internal/config"
	"github.com/MKhiriev/mcp-manager/internal/handler"
	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/internal/server"
	"github.com/MKhiriev/mcp-manager/internal/service"
	"github.com/MKhiriev/mcp-manager/internal/store"
	"github.com/MKhiriev/mcp-manager/internal/workers"
	"github.com/MKhiriev/mcp-manager/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "mcp-manager",
		Short:        "Manage MCP server entries across client config files",
		SilenceUsage: true,
	}
	flags := config.BindFlags(root.PersistentFlags())

	serve := serveCmd(flags)
	root.RunE = serve.RunE
	root.AddCommand(serve, updatesCmd(flags), versionCmd())

	return root
}

func serveCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, web UI and MCP tool endpoint (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			log := logger.NewLogger("mcp-manager", cfg.App.LogLevel)
			log.Debug().Any("config", cfg).Msg("received configs")

			services, err := buildServices(cfg, log)
			if err != nil {
				log.Error().Err(err).Msg("error creating services")
				return err
			}

			handlers, err := handler.NewHandlers(services, cfg, log)
			if err != nil {
				log.Error().Err(err).Msg("error creating handlers")
				return err
			}

			bg := workers.NewWorkers(cfg.Workers, services.UpdateService, log)

			srv, err := server.NewServer(handlers, bg, cfg.Server, log)
			if err != nil {
				log.Error().Err(err).Msg("error creating server")
				return err
			}

			if err = srv.RunServer(cmd.Context()); err != nil {
				log.Error().Err(err).Msg("server stopped with error")
				return err
			}
			return nil
		},
	}
}

// updatesCmd runs a single scan and prints the report. Logs go to stderr so
// stdout stays valid JSON.
func updatesCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "updates",
		Short: "Check every configured server for a newer package version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			log := logger.NewStderrLogger("mcp-manager", cfg.App.LogLevel)

			services, err := buildServices(cfg, log)
			if err != nil {
				return err
			}

			ctx := logger.ContextWith(cmd.Context(), log)
			return printUpdates(ctx, cmd.OutOrStdout(), services.UpdateService)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		},
	}
}

func loadConfig(flags *config.Flags) (*config.StructuredConfig, error) {
	cfg, err := config.GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}
	return cfg, nil
}

func buildServices(cfg *config.StructuredConfig, log *logger.Logger) (*service.Services, error) {
	storages, err := store.NewStorages(cfg.Storage.Files, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	registry, err := adapter.NewRegistry(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create registry adapter: %w", err)
	}

	adapters := service.Adapters{
		Registry:       adapter.NewInstrumentedRegistry(registry),
		PackageManager: adapter.NewInstrumentedPackageManager(adapter.NewNPMPackageManager(cfg.Adapter, log)),
	}

	return service.NewServices(storages, adapters, cfg, log)
}

func printUpdates(ctx context.Context, w io.Writer, updates service.UpdateService) error {
	report, err := updates.ScanForUpdates(ctx)
	if err != nil {
		return fmt.Errorf("scan for updates: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
