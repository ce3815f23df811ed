package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rayScope/internal/config"
	"rayScope/internal/dex"
	"rayScope/internal/model"
)

func runDecode(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadDecode(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	kind, err := model.ParseKind(cfg.Kind)
	if err != nil {
		return err
	}

	encoded, err := readInput(cfg, cmd.InOrStdin())
	if err != nil {
		return err
	}
	data, err := decodeAccountData(encoded, cfg.Encoding)
	if err != nil {
		return err
	}

	decoded, err := dex.Decode(data, kind)
	if err != nil {
		return err
	}
	logger.Debug("account decoded", zap.String("kind", string(decoded.Kind())), zap.Int("bytes", len(data)))

	return writeJSON(cmd.OutOrStdout(), cfg.Out, poolView{Kind: decoded.Kind(), Pool: decoded})
}

func readInput(cfg config.DecodeConfig, stdin io.Reader) (string, error) {
	switch {
	case cfg.Data != "" && cfg.In != "":
		return "", fmt.Errorf("use either --data or --in, not both")
	case cfg.Data != "":
		return cfg.Data, nil
	case cfg.In == "-":
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	case cfg.In != "":
		raw, err := os.ReadFile(cfg.In)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("account data is required (--data or --in)")
	}
}

func decodeAccountData(encoded, encoding string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	switch strings.ToLower(encoding) {
	case "base64":
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode base64: %w", err)
		}
		return data, nil
	case "hex":
		data, err := hex.DecodeString(strings.TrimPrefix(encoded, "0x"))
		if err != nil {
			return nil, fmt.Errorf("decode hex: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", encoding)
	}
}

// writeJSON writes v indented to path, or to stdout when path is empty.
func writeJSON(stdout io.Writer, path string, v any) error {
	var buf bytes.Buffer
	enc := jsonEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	if path == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
