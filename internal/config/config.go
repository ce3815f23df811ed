package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "RAYSCOPE"

// QueryConfig holds configuration for the one-shot pool and price commands.
type QueryConfig struct {
	RPCURL        string
	Kind          string
	MaxRetries    int
	RetryBackoff  time.Duration
	Commitment    string
	TickTolerance int32
	LogLevel      string
}

// LoadQuery merges config file, environment variables, and flags into QueryConfig.
func LoadQuery(cfgFile string, flags *pflag.FlagSet) (QueryConfig, error) {
	v, err := load(cfgFile, flags, map[string]any{
		"kind":           "auto",
		"max-retries":    3,
		"retry-backoff":  200 * time.Millisecond,
		"commitment":     "confirmed",
		"tick-tolerance": 1,
		"log-level":      "info",
	})
	if err != nil {
		return QueryConfig{}, err
	}

	cfg := QueryConfig{
		RPCURL:        v.GetString("rpc"),
		Kind:          v.GetString("kind"),
		MaxRetries:    v.GetInt("max-retries"),
		RetryBackoff:  v.GetDuration("retry-backoff"),
		Commitment:    v.GetString("commitment"),
		TickTolerance: v.GetInt32("tick-tolerance"),
		LogLevel:      v.GetString("log-level"),
	}
	if err := checkTickTolerance(cfg.TickTolerance); err != nil {
		return QueryConfig{}, err
	}

	return cfg, nil
}

func checkTickTolerance(ticks int32) error {
	if ticks < 0 {
		return fmt.Errorf("tick-tolerance must be >= 0, got %d", ticks)
	}
	return nil
}

// load builds a viper instance layered as flags, then RAYSCOPE_* env, then the
// config file, then defaults.
func load(cfgFile string, flags *pflag.FlagSet, defaults map[string]any) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("rayscope")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
