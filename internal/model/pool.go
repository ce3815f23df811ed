package model

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// Kind tags which account layout a pool was decoded from.
type Kind string

const (
	KindAuto      Kind = "auto"
	KindV4        Kind = "v4"
	KindCPMM      Kind = "cpmm"
	KindCLMM      Kind = "clmm"
	KindLaunchpad Kind = "launchpad"
)

// DetectOrder is the order auto-detection tries layouts in.
var DetectOrder = []Kind{KindV4, KindCPMM, KindCLMM, KindLaunchpad}

// ParseKind normalizes a user supplied kind. Empty input means auto-detection.
func ParseKind(input string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "auto":
		return KindAuto, nil
	case "v4", "amm", "ammv4":
		return KindV4, nil
	case "cpmm", "cpswap":
		return KindCPMM, nil
	case "clmm":
		return KindCLMM, nil
	case "launchpad", "launchlab":
		return KindLaunchpad, nil
	default:
		return "", fmt.Errorf("unsupported pool kind: %s", input)
	}
}

// Pool is a decoded pool account. The set of implementations is closed:
// *V4Pool, *CPMMPool, *CLMMPool and *LaunchpadPool.
type Pool interface {
	Kind() Kind
	// Mints returns the base and quote token mints.
	Mints() (base, quote solana.PublicKey)
	// Vaults returns the token accounts holding the base and quote side.
	Vaults() (base, quote solana.PublicKey)

	sealed()
}

// Decimals returns the base and quote mint decimals recorded in the pool account.
func Decimals(p Pool) (base, quote uint8) {
	switch v := p.(type) {
	case *V4Pool:
		return v.BaseDecimal, v.QuoteDecimal
	case *CPMMPool:
		return v.Mint0Decimals, v.Mint1Decimals
	case *CLMMPool:
		return v.MintDecimals0, v.MintDecimals1
	case *LaunchpadPool:
		return v.BaseDecimals, v.QuoteDecimals
	default:
		return 0, 0
	}
}
