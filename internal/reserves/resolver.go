package reserves

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/sync/errgroup"

	"rayScope/internal/model"
)

var (
	ErrNotApplicable = errors.New("reserves not applicable to pool kind")
	ErrPartialFetch  = errors.New("partial reserve fetch")
)

// BalanceFetcher looks up SPL token account balances.
type BalanceFetcher interface {
	TokenBalance(ctx context.Context, account solana.PublicKey) (model.TokenAmount, error)
}

// Resolve fetches the base and quote vault balances of a constant-product
// pool concurrently. Both lookups always run to completion; a failure of
// one does not cancel the other.
func Resolve(ctx context.Context, pool model.Pool, fetcher BalanceFetcher) (model.Reserves, error) {
	switch pool.(type) {
	case *model.V4Pool, *model.CPMMPool:
	default:
		return model.Reserves{}, fmt.Errorf("resolve %s: %w", kindOf(pool), ErrNotApplicable)
	}

	baseVault, quoteVault := pool.Vaults()

	var (
		g                 errgroup.Group
		base, quote       model.TokenAmount
		baseErr, quoteErr error
	)
	g.Go(func() error {
		base, baseErr = fetcher.TokenBalance(ctx, baseVault)
		return baseErr
	})
	g.Go(func() error {
		quote, quoteErr = fetcher.TokenBalance(ctx, quoteVault)
		return quoteErr
	})
	if err := g.Wait(); err == nil {
		return model.Reserves{Base: base, Quote: quote}, nil
	}

	switch {
	case baseErr != nil && quoteErr != nil:
		return model.Reserves{}, errors.Join(
			fmt.Errorf("base vault %s: %w", baseVault, baseErr),
			fmt.Errorf("quote vault %s: %w", quoteVault, quoteErr),
		)
	case baseErr != nil:
		return model.Reserves{}, fmt.Errorf("base vault %s: %w: %w", baseVault, ErrPartialFetch, baseErr)
	default:
		return model.Reserves{}, fmt.Errorf("quote vault %s: %w: %w", quoteVault, ErrPartialFetch, quoteErr)
	}
}

func kindOf(pool model.Pool) model.Kind {
	if pool == nil {
		return "nil pool"
	}
	return pool.Kind()
}
