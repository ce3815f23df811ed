package stub

import (
	"context"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"

	"rayScope/internal/chain"
	"rayScope/internal/model"
)

// Client implements chain.Client from in-memory maps for tests.
type Client struct {
	mu       sync.Mutex
	accounts map[solana.PublicKey][]byte
	balances map[solana.PublicKey]model.TokenAmount
	failures map[solana.PublicKey]error
	calls    map[solana.PublicKey]int
}

// NewClient creates an empty stub client.
func NewClient() *Client {
	return &Client{
		accounts: make(map[solana.PublicKey][]byte),
		balances: make(map[solana.PublicKey]model.TokenAmount),
		failures: make(map[solana.PublicKey]error),
		calls:    make(map[solana.PublicKey]int),
	}
}

// AddAccount stores raw account data for address.
func (c *Client) AddAccount(address solana.PublicKey, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts[address] = append([]byte(nil), data...)
}

// AddBalance stores a token balance for a token account.
func (c *Client) AddBalance(account solana.PublicKey, amount model.TokenAmount) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balances[account] = amount
}

// Fail makes every lookup of address return err.
func (c *Client) Fail(address solana.PublicKey, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[address] = err
}

// Calls returns how many lookups hit address.
func (c *Client) Calls(address solana.PublicKey) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[address]
}

func (c *Client) AccountData(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get account %s: %w: %w", address, chain.ErrNetwork, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[address]++
	if err := c.failures[address]; err != nil {
		return nil, err
	}
	data, ok := c.accounts[address]
	if !ok {
		return nil, fmt.Errorf("get account %s: %w", address, chain.ErrAddressNotFound)
	}
	return append([]byte(nil), data...), nil
}

func (c *Client) TokenBalance(ctx context.Context, account solana.PublicKey) (model.TokenAmount, error) {
	if err := ctx.Err(); err != nil {
		return model.TokenAmount{}, fmt.Errorf("get token balance %s: %w: %w", account, chain.ErrNetwork, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[account]++
	if err := c.failures[account]; err != nil {
		return model.TokenAmount{}, err
	}
	amount, ok := c.balances[account]
	if !ok {
		return model.TokenAmount{}, fmt.Errorf("get token balance %s: %w", account, chain.ErrAddressNotFound)
	}
	return amount, nil
}

var _ chain.Client = (*Client)(nil)
