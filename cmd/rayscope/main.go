package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "rayscope",
		Short:        "Raydium pool decoder and price engine",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode raw pool account data offline",
		RunE:  runDecode,
	}

	decodeCmd.Flags().String("in", "", "file with encoded account data (- for stdin)")
	decodeCmd.Flags().String("data", "", "encoded account data")
	decodeCmd.Flags().String("encoding", "base64", "account data encoding (base64, hex)")
	decodeCmd.Flags().String("kind", "auto", "pool layout (auto, v4, cpmm, clmm, launchpad)")
	decodeCmd.Flags().String("out", "", "output JSON path, stdout when empty")
	decodeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(decodeCmd)

	poolCmd := &cobra.Command{
		Use:   "pool <address>",
		Short: "Fetch and decode a pool account",
		Args:  cobra.ExactArgs(1),
		RunE:  runPool,
	}
	addQueryFlags(poolCmd)
	root.AddCommand(poolCmd)

	priceCmd := &cobra.Command{
		Use:   "price <address>",
		Short: "Fetch a pool and derive its price and liquidity",
		Args:  cobra.ExactArgs(1),
		RunE:  runPrice,
	}
	addQueryFlags(priceCmd)
	root.AddCommand(priceCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Periodically snapshot pool prices to storage",
		RunE:  runSnapshot,
	}

	snapshotCmd.Flags().String("rpc", "", "Solana RPC URL")
	snapshotCmd.Flags().StringSlice("pool", nil, "pools as address or address:kind (comma-separated)")
	snapshotCmd.Flags().Duration("interval", 30*time.Second, "time between snapshot rounds")
	snapshotCmd.Flags().Bool("once", false, "take a single round and exit")
	snapshotCmd.Flags().Int("batch-size", 10, "pools queried concurrently per batch")
	snapshotCmd.Flags().String("out", "./data/snapshots.jsonl", "output JSONL path, empty to disable")
	snapshotCmd.Flags().String("pg-dsn", "", "Postgres DSN")
	snapshotCmd.Flags().String("metrics-addr", "", "listen address for /metrics, empty to disable")
	snapshotCmd.Flags().Int("max-retries", 3, "maximum RPC retry attempts")
	snapshotCmd.Flags().Duration("retry-backoff", 200*time.Millisecond, "initial RPC retry backoff")
	snapshotCmd.Flags().String("commitment", "confirmed", "RPC commitment (processed, confirmed, finalized)")
	snapshotCmd.Flags().Int32("tick-tolerance", 1, "allowed drift between stored and implied CLMM tick")
	snapshotCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(snapshotCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().String("rpc", "", "Solana RPC URL")
	cmd.Flags().String("kind", "auto", "pool layout (auto, v4, cpmm, clmm, launchpad)")
	cmd.Flags().Int("max-retries", 3, "maximum RPC retry attempts")
	cmd.Flags().Duration("retry-backoff", 200*time.Millisecond, "initial RPC retry backoff")
	cmd.Flags().String("commitment", "confirmed", "RPC commitment (processed, confirmed, finalized)")
	cmd.Flags().Int32("tick-tolerance", 1, "allowed drift between stored and implied CLMM tick")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func parseCommitment(input string) (rpc.CommitmentType, error) {
	switch commitment := rpc.CommitmentType(input); commitment {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
		return commitment, nil
	default:
		return "", fmt.Errorf("unsupported commitment: %s", input)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
