package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"block_explorer/internal/adapters/rpc"
	"block_explorer/internal/adapters/storage/memory/block_state"
	"block_explorer/internal/adapters/storage/memory/selection"
	"block_explorer/internal/adapters/storage/memory/transaction"
	"block_explorer/internal/adapters/web"
	"block_explorer/internal/config"
	"block_explorer/internal/core/application"
	"block_explorer/internal/logger"
	"block_explorer/internal/metrics"
	"block_explorer/pkg/explorer"
)

type rootOptions struct {
	configFile string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "explorer",
		Short: "Ethereum block explorer",
		Long: `Serves a single page showing one Ethereum block at a time: its number with
Previous/Next navigation, its transactions and the details of a selected transaction.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configFile, "config", "",
		"Path to YAML configuration file (default: "+config.DefaultConfigFilePath+")")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "",
		"Path to a .env file with "+config.EnvAPIKey+" and "+config.EnvNetwork+" (default: "+config.DefaultEnvFilePath+")")

	return cmd
}

func run(parent context.Context, opts *rootOptions) error {
	cfg, err := config.LoadConfig(opts.configFile, opts.envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.NewAppLogger(cfg.Logger, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	configSource := opts.configFile
	if configSource == "" {
		configSource = config.DefaultConfigFilePath + " (default)"
	}
	appLogger.Info("Configuration loaded successfully",
		"configFile", configSource,
		"network", cfg.ETHClient.Network,
		"nodeURL", cfg.ETHClient.RedactedNodeURL(),
	)

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	httpClient := &http.Client{Timeout: time.Duration(cfg.ETHClient.ClientTimeoutSeconds) * time.Second}
	ethClient, err := rpc.NewEthereumNodeAdapter(ctx, cfg.ETHClient.ResolveNodeURL(), httpClient, appLogger, appMetrics)
	if err != nil {
		return fmt.Errorf("failed to create ethereum client: %w", err)
	}
	defer ethClient.Close()

	explorerService, err := application.NewExplorerService(
		block_state.NewInMemoryBlockStateRepo(),
		transaction.NewInMemoryTransactionListRepo(),
		selection.NewInMemorySelectionRepo(),
		ethClient,
		appLogger,
		appMetrics,
	)
	if err != nil {
		return fmt.Errorf("failed to create explorer service: %w", err)
	}

	server, err := web.NewServer(explorerService, appLogger, &cfg.Server, appMetrics, registry)
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}

	if err := runUntilShutdown(ctx, appLogger, explorerService, server, cfg.Server.ShutdownTimeoutSeconds); err != nil {
		return err
	}

	appLogger.Info("Application shut down gracefully.")
	return nil
}

// runUntilShutdown runs the explorer and the web server until ctx is
// cancelled or the server fails, then stops both.
func runUntilShutdown(
	ctx context.Context,
	appLogger logger.AppLogger,
	explorerService explorer.Explorer,
	server *web.Server,
	shutdownTimeoutSeconds int,
) error {
	g, gctx := errgroup.WithContext(ctx)
	shutdownTimeout := time.Duration(shutdownTimeoutSeconds) * time.Second

	g.Go(func() error {
		appLogger.Info("Starting explorer service...")
		if err := explorerService.Start(gctx); err != nil {
			return fmt.Errorf("explorer service start error: %w", err)
		}
		<-gctx.Done()

		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := explorerService.Stop(stopCtx); err != nil {
			return fmt.Errorf("explorer service shutdown error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := server.Start(); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		if errors.Is(ctx.Err(), context.Canceled) {
			appLogger.Info("Shutting down due to OS signal...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
