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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rayScope/internal/chain"
	"rayScope/internal/config"
	"rayScope/internal/observability"
	"rayScope/internal/pool"
	"rayScope/internal/snapshot"
	"rayScope/internal/storage"
	"rayScope/internal/storage/postgres"
)

func runSnapshot(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadSnapshot(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}
	if cfg.Out == "" && cfg.PGDSN == "" {
		return fmt.Errorf("at least one of out or pg-dsn is required")
	}

	targets, err := snapshot.ParseTargets(cfg.Pools)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("pool list is required")
	}

	commitment, err := parseCommitment(cfg.Commitment)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics("")

	var sinks storage.Multi
	if cfg.Out != "" {
		sinks = append(sinks, storage.NewJsonlStorage(cfg.Out))
	}
	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		sinks = append(sinks, store)
	}

	if cfg.MetricsAddr != "" {
		server := serveMetrics(cfg.MetricsAddr, metrics, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	client := chain.NewRPCClient(cfg.RPCURL,
		chain.WithMaxRetries(cfg.MaxRetries),
		chain.WithRetryDelay(cfg.RetryBackoff),
		chain.WithCommitment(commitment),
		chain.WithLogger(logger),
	)
	defer client.Close()

	svc := pool.NewService(client,
		pool.WithLogger(logger),
		pool.WithMetrics(metrics),
		pool.WithTickTolerance(cfg.TickTolerance),
	)

	runner := snapshot.NewRunner(snapshot.RunConfig{
		Targets:   targets,
		Interval:  cfg.Interval,
		BatchSize: cfg.BatchSize,
		Once:      cfg.Once,
	}, svc, sinks, metrics, logger)

	logger.Info("snapshot start",
		zap.String("rpc", cfg.RPCURL),
		zap.Int("pools", len(targets)),
		zap.Duration("interval", cfg.Interval),
		zap.Int("batch_size", cfg.BatchSize),
		zap.String("out", cfg.Out),
		zap.Bool("postgres", cfg.PGDSN != ""),
		zap.String("metrics_addr", cfg.MetricsAddr),
	)

	return runner.Run(ctx)
}

func serveMetrics(addr string, metrics *observability.Metrics, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	return server
}
