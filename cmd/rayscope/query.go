package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rayScope/internal/chain"
	"rayScope/internal/config"
	"rayScope/internal/model"
	"rayScope/internal/pool"
)

func runPool(cmd *cobra.Command, args []string) error {
	return withQueryService(cmd, func(ctx context.Context, svc *pool.Service, kind model.Kind) error {
		decoded, err := svc.GetPool(ctx, args[0], kind)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), "", poolView{Address: args[0], Kind: decoded.Kind(), Pool: decoded})
	})
}

func runPrice(cmd *cobra.Command, args []string) error {
	return withQueryService(cmd, func(ctx context.Context, svc *pool.Service, kind model.Kind) error {
		result, err := svc.Query(ctx, args[0], kind)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), "", newPriceView(result))
	})
}

func withQueryService(cmd *cobra.Command, fn func(context.Context, *pool.Service, model.Kind) error) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadQuery(cfgFile, cmd.Flags())
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
	kind, err := model.ParseKind(cfg.Kind)
	if err != nil {
		return err
	}
	commitment, err := parseCommitment(cfg.Commitment)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := chain.NewRPCClient(cfg.RPCURL,
		chain.WithMaxRetries(cfg.MaxRetries),
		chain.WithRetryDelay(cfg.RetryBackoff),
		chain.WithCommitment(commitment),
		chain.WithLogger(logger),
	)
	defer client.Close()

	svc := pool.NewService(client,
		pool.WithLogger(logger),
		pool.WithTickTolerance(cfg.TickTolerance),
	)

	logger.Debug("query start", zap.String("rpc", cfg.RPCURL), zap.String("kind", string(kind)))
	return fn(ctx, svc, kind)
}
