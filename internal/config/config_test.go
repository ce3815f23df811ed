package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func snapshotFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("snapshot", pflag.ContinueOnError)
	flags.String("rpc", "", "")
	flags.StringSlice("pool", nil, "")
	flags.Duration("interval", 30*time.Second, "")
	flags.Int("batch-size", 10, "")
	flags.String("log-level", "info", "")
	return flags
}

func TestLoadSnapshotDefaults(t *testing.T) {
	cfg, err := LoadSnapshot("", snapshotFlags())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Interval != 30*time.Second || cfg.BatchSize != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Out != "./data/snapshots.jsonl" || cfg.Commitment != "confirmed" || cfg.TickTolerance != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Pools != nil {
		t.Fatalf("expected no pools, got %v", cfg.Pools)
	}
}

func TestLoadSnapshotEnvAndFlags(t *testing.T) {
	t.Setenv("RAYSCOPE_RPC", "http://env.example")
	t.Setenv("RAYSCOPE_POOL", " a , b:clmm ,")
	t.Setenv("RAYSCOPE_BATCH_SIZE", "4")

	flags := snapshotFlags()
	if err := flags.Parse([]string{"--rpc", "http://flag.example"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := LoadSnapshot("", flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RPCURL != "http://flag.example" {
		t.Fatalf("flag must win over env, got %s", cfg.RPCURL)
	}
	if cfg.BatchSize != 4 {
		t.Fatalf("expected env batch size, got %d", cfg.BatchSize)
	}
	if !reflect.DeepEqual(cfg.Pools, []string{"a", "b:clmm"}) {
		t.Fatalf("unexpected pools: %v", cfg.Pools)
	}
}

func TestLoadQueryConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rayscope.yaml")
	content := "rpc: http://file.example\nkind: clmm\ntick-tolerance: 3\nretry-backoff: 1s\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadQuery(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RPCURL != "http://file.example" || cfg.Kind != "clmm" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.TickTolerance != 3 || cfg.RetryBackoff != time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.MaxRetries != 3 {
		t.Fatalf("expected default retries, got %d", cfg.MaxRetries)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := LoadDecode(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestSplitAndClean(t *testing.T) {
	if got := splitAndClean(""); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	got := splitAndClean("x, ,y")
	if !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("unexpected split: %v", got)
	}
}

func TestTickTolerance(t *testing.T) {
	t.Setenv("RAYSCOPE_TICK_TOLERANCE", "0")
	cfg, err := LoadQuery("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TickTolerance != 0 {
		t.Fatalf("zero tolerance must be kept, got %d", cfg.TickTolerance)
	}

	t.Setenv("RAYSCOPE_TICK_TOLERANCE", "-1")
	if _, err := LoadQuery("", nil); err == nil {
		t.Fatalf("expected error for negative tolerance")
	}
	if _, err := LoadSnapshot("", snapshotFlags()); err == nil {
		t.Fatalf("expected error for negative tolerance")
	}
}
