package config

import (
	"time"

	"github.com/spf13/pflag"
)

// SnapshotConfig holds configuration for the snapshot command.
type SnapshotConfig struct {
	RPCURL        string
	Pools         []string
	Interval      time.Duration
	Once          bool
	BatchSize     int
	Out           string
	PGDSN         string
	MetricsAddr   string
	MaxRetries    int
	RetryBackoff  time.Duration
	Commitment    string
	TickTolerance int32
	LogLevel      string
}

// LoadSnapshot merges config file, environment variables, and flags into SnapshotConfig.
func LoadSnapshot(cfgFile string, flags *pflag.FlagSet) (SnapshotConfig, error) {
	v, err := load(cfgFile, flags, map[string]any{
		"interval":       30 * time.Second,
		"batch-size":     10,
		"out":            "./data/snapshots.jsonl",
		"max-retries":    3,
		"retry-backoff":  200 * time.Millisecond,
		"commitment":     "confirmed",
		"tick-tolerance": 1,
		"log-level":      "info",
	})
	if err != nil {
		return SnapshotConfig{}, err
	}

	cfg := SnapshotConfig{
		RPCURL:        v.GetString("rpc"),
		Pools:         getStringSlice(v, "pool"),
		Interval:      v.GetDuration("interval"),
		Once:          v.GetBool("once"),
		BatchSize:     v.GetInt("batch-size"),
		Out:           v.GetString("out"),
		PGDSN:         v.GetString("pg-dsn"),
		MetricsAddr:   v.GetString("metrics-addr"),
		MaxRetries:    v.GetInt("max-retries"),
		RetryBackoff:  v.GetDuration("retry-backoff"),
		Commitment:    v.GetString("commitment"),
		TickTolerance: v.GetInt32("tick-tolerance"),
		LogLevel:      v.GetString("log-level"),
	}
	if err := checkTickTolerance(cfg.TickTolerance); err != nil {
		return SnapshotConfig{}, err
	}

	return cfg, nil
}
