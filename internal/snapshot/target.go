package snapshot

import (
	"fmt"
	"strings"

	"rayScope/internal/chain"
	"rayScope/internal/model"
)

// Target is one pool the runner observes.
type Target struct {
	Address string
	Kind    model.Kind
}

// ParseTargets converts "address" or "address:kind" entries into targets.
// Duplicate addresses keep their first entry.
func ParseTargets(inputs []string) ([]Target, error) {
	targets := make([]Target, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))
	for _, input := range inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		address, kindText, _ := strings.Cut(input, ":")
		key, err := chain.ParseAddress(address)
		if err != nil {
			return nil, fmt.Errorf("invalid pool %q: %w", input, err)
		}
		kind, err := model.ParseKind(kindText)
		if err != nil {
			return nil, fmt.Errorf("invalid pool %q: %w", input, err)
		}
		if _, ok := seen[key.String()]; ok {
			continue
		}
		seen[key.String()] = struct{}{}
		targets = append(targets, Target{Address: key.String(), Kind: kind})
	}
	return targets, nil
}

// SplitTargets splits targets into batches of at most batchSize.
func SplitTargets(targets []Target, batchSize int) ([][]Target, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("batch size must be greater than zero")
	}

	batches := make([][]Target, 0, (len(targets)+batchSize-1)/batchSize)
	for start := 0; start < len(targets); start += batchSize {
		end := start + batchSize
		if end > len(targets) {
			end = len(targets)
		}
		batches = append(batches, targets[start:end])
	}
	return batches, nil
}
