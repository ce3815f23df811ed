package chain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"go.uber.org/zap"

	"rayScope/internal/model"
)

const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 200 * time.Millisecond
)

// RPCClient implements Client over Solana JSON-RPC. Transient failures are
// retried with exponential backoff; missing accounts are not.
type RPCClient struct {
	rpc        *rpc.Client
	commitment rpc.CommitmentType
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger
}

// RPCOption configures RPCClient.
type RPCOption func(*RPCClient)

func WithMaxRetries(n int) RPCOption {
	return func(c *RPCClient) { c.maxRetries = n }
}

func WithRetryDelay(d time.Duration) RPCOption {
	return func(c *RPCClient) { c.retryDelay = d }
}

func WithCommitment(commitment rpc.CommitmentType) RPCOption {
	return func(c *RPCClient) { c.commitment = commitment }
}

func WithLogger(logger *zap.Logger) RPCOption {
	return func(c *RPCClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewRPCClient creates a client for the given RPC endpoint.
func NewRPCClient(endpoint string, opts ...RPCOption) *RPCClient {
	c := &RPCClient{
		rpc:        rpc.New(endpoint),
		commitment: rpc.CommitmentConfirmed,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close closes the underlying RPC client.
func (c *RPCClient) Close() error {
	return c.rpc.Close()
}

// AccountData fetches the raw data of an account.
func (c *RPCClient) AccountData(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	var data []byte
	err := c.retry(ctx, "getAccountInfo", address, func(ctx context.Context) error {
		out, err := c.rpc.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
			Encoding:   solana.EncodingBase64,
			Commitment: c.commitment,
		})
		if err != nil {
			return classify(err)
		}
		if out == nil || out.Value == nil || out.Value.Data == nil {
			return ErrAddressNotFound
		}
		data = out.Value.Data.GetBinary()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", address, err)
	}
	return data, nil
}

// TokenBalance fetches the balance of an SPL token account.
func (c *RPCClient) TokenBalance(ctx context.Context, account solana.PublicKey) (model.TokenAmount, error) {
	var amount model.TokenAmount
	err := c.retry(ctx, "getTokenAccountBalance", account, func(ctx context.Context) error {
		out, err := c.rpc.GetTokenAccountBalance(ctx, account, c.commitment)
		if err != nil {
			return classify(err)
		}
		if out == nil || out.Value == nil {
			return ErrAddressNotFound
		}
		raw, err := strconv.ParseUint(out.Value.Amount, 10, 64)
		if err != nil {
			return fmt.Errorf("parse amount %q: %w: %w", out.Value.Amount, ErrNetwork, err)
		}
		amount = model.TokenAmount{Amount: raw, Decimals: out.Value.Decimals}
		return nil
	})
	if err != nil {
		return model.TokenAmount{}, fmt.Errorf("get token balance %s: %w", account, err)
	}
	return amount, nil
}

func (c *RPCClient) retry(ctx context.Context, method string, address solana.PublicKey, fn func(context.Context) error) error {
	attempt := 0
	err := withRetry(ctx, c.maxRetries, c.retryDelay, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err != nil && !errors.Is(err, ErrAddressNotFound) {
			c.logger.Debug("rpc call failed",
				zap.String("method", method),
				zap.String("address", address.String()),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
		return err
	})
	if err != nil && !errors.Is(err, ErrAddressNotFound) && !errors.Is(err, ErrNetwork) {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	return err
}

// classify maps solana-go errors onto the package sentinels.
func classify(err error) error {
	if errors.Is(err, rpc.ErrNotFound) {
		return ErrAddressNotFound
	}
	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) && strings.Contains(strings.ToLower(rpcErr.Message), "could not find account") {
		return fmt.Errorf("%w: %w", ErrAddressNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrNetwork, err)
}
