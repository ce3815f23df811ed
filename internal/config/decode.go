package config

import (
	"github.com/spf13/pflag"
)

// DecodeConfig holds configuration for the offline decode command.
type DecodeConfig struct {
	In       string
	Data     string
	Encoding string
	Kind     string
	Out      string
	LogLevel string
}

// LoadDecode merges config file, environment variables, and flags into DecodeConfig.
func LoadDecode(cfgFile string, flags *pflag.FlagSet) (DecodeConfig, error) {
	v, err := load(cfgFile, flags, map[string]any{
		"encoding":  "base64",
		"kind":      "auto",
		"log-level": "info",
	})
	if err != nil {
		return DecodeConfig{}, err
	}

	cfg := DecodeConfig{
		In:       v.GetString("in"),
		Data:     v.GetString("data"),
		Encoding: v.GetString("encoding"),
		Kind:     v.GetString("kind"),
		Out:      v.GetString("out"),
		LogLevel: v.GetString("log-level"),
	}

	return cfg, nil
}
