package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rayScope/internal/model"
)

//go:embed schema.sql
var schema string

// Store provides Postgres persistence for pools and snapshots.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the tables the store writes to.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// UpsertPools inserts or updates static pool descriptions.
func (s *Store) UpsertPools(ctx context.Context, pools []model.PoolRecord) error {
	if len(pools) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, pool := range pools {
		batch.Queue(`
			INSERT INTO pools (
				pool_address, kind, base_mint, quote_mint, base_vault, quote_vault,
				base_decimals, quote_decimals, first_seen, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
			ON CONFLICT (pool_address)
			DO UPDATE SET
				kind = EXCLUDED.kind,
				base_mint = EXCLUDED.base_mint,
				quote_mint = EXCLUDED.quote_mint,
				base_vault = EXCLUDED.base_vault,
				quote_vault = EXCLUDED.quote_vault,
				base_decimals = EXCLUDED.base_decimals,
				quote_decimals = EXCLUDED.quote_decimals,
				first_seen = LEAST(pools.first_seen, EXCLUDED.first_seen),
				updated_at = now()
		`,
			pool.Address,
			string(pool.Kind),
			pool.BaseMint,
			pool.QuoteMint,
			pool.BaseVault,
			pool.QuoteVault,
			int16(pool.BaseDecimals),
			int16(pool.QuoteDecimals),
			pool.FirstSeen,
		)
	}

	return s.sendBatch(ctx, batch)
}

// PutSnapshots inserts snapshots, replacing any row with the same pool and time.
func (s *Store) PutSnapshots(ctx context.Context, snapshots []model.PoolSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, snap := range snapshots {
		snap := snap
		var warning *string
		if snap.Warning != "" {
			warning = &snap.Warning
		}
		batch.Queue(`
			INSERT INTO pool_snapshots (
				pool_address, observed_at, kind, price, base_reserve, quote_reserve,
				liquidity, sqrt_price_x64, tick, funding_progress, warning, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now())
			ON CONFLICT (pool_address, observed_at)
			DO UPDATE SET
				kind = EXCLUDED.kind,
				price = EXCLUDED.price,
				base_reserve = EXCLUDED.base_reserve,
				quote_reserve = EXCLUDED.quote_reserve,
				liquidity = EXCLUDED.liquidity,
				sqrt_price_x64 = EXCLUDED.sqrt_price_x64,
				tick = EXCLUDED.tick,
				funding_progress = EXCLUDED.funding_progress,
				warning = EXCLUDED.warning
		`,
			snap.Address,
			snap.ObservedAt,
			string(snap.Kind),
			snap.Price.String(),
			snap.BaseReserve,
			snap.QuoteReserve,
			snap.Liquidity,
			snap.SqrtPriceX64,
			snap.Tick,
			snap.Progress,
			warning,
		)
	}

	return s.sendBatch(ctx, batch)
}

func (s *Store) sendBatch(ctx context.Context, batch *pgx.Batch) error {
	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch statement %d: %w", i, err)
		}
	}
	return nil
}
