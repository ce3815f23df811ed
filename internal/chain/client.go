package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"

	"rayScope/internal/model"
)

var (
	ErrAddressNotFound  = errors.New("address not found")
	ErrNetwork          = errors.New("network error")
	ErrMalformedAddress = errors.New("malformed address")
)

// Client is the read-only view of the chain the pool service needs.
type Client interface {
	// AccountData returns the raw data of an account.
	AccountData(ctx context.Context, address solana.PublicKey) ([]byte, error)
	// TokenBalance returns the balance of an SPL token account.
	TokenBalance(ctx context.Context, account solana.PublicKey) (model.TokenAmount, error)
}

// ParseAddress parses a base58 account address.
func ParseAddress(text string) (solana.PublicKey, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return solana.PublicKey{}, fmt.Errorf("empty address: %w", ErrMalformedAddress)
	}
	key, err := solana.PublicKeyFromBase58(trimmed)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("parse address %q: %w: %w", trimmed, ErrMalformedAddress, err)
	}
	return key, nil
}
