package snapshot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"rayScope/internal/model"
	"rayScope/internal/observability"
	"rayScope/internal/pool"
	"rayScope/internal/storage"
)

// Querier resolves a pool address into decoded state and metrics.
type Querier interface {
	Query(ctx context.Context, address string, kind model.Kind) (pool.Result, error)
}

// RunConfig holds runtime settings for the snapshot loop.
type RunConfig struct {
	Targets   []Target
	Interval  time.Duration
	BatchSize int
	Once      bool
}

// Runner periodically queries pools and writes snapshots to storage.
type Runner struct {
	cfg      RunConfig
	querier  Querier
	storage  storage.Storage
	metrics  *observability.Metrics
	logger   *zap.Logger
	clock    func() time.Time
	recorded map[string]struct{}
}

// NewRunner builds a Runner with its dependencies.
func NewRunner(cfg RunConfig, querier Querier, sink storage.Storage, metrics *observability.Metrics, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:      cfg,
		querier:  querier,
		storage:  sink,
		metrics:  metrics,
		logger:   logger,
		clock:    time.Now,
		recorded: make(map[string]struct{}),
	}
}

// Run takes a snapshot round immediately and then one per interval until ctx
// is cancelled. With Once set it returns after the first round.
func (r *Runner) Run(ctx context.Context) error {
	if r.querier == nil {
		return fmt.Errorf("querier is nil")
	}
	if r.storage == nil {
		return fmt.Errorf("storage is nil")
	}
	if len(r.cfg.Targets) == 0 {
		return fmt.Errorf("at least one pool is required")
	}
	if !r.cfg.Once && r.cfg.Interval <= 0 {
		return fmt.Errorf("interval must be greater than zero")
	}

	batches, err := SplitTargets(r.cfg.Targets, r.cfg.BatchSize)
	if err != nil {
		return err
	}

	if err := r.round(ctx, batches); err != nil {
		return err
	}
	if r.cfg.Once {
		return nil
	}

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("snapshot loop stopped")
			return nil
		case <-ticker.C:
			if err := r.round(ctx, batches); err != nil {
				return err
			}
		}
	}
}

func (r *Runner) round(ctx context.Context, batches [][]Target) error {
	saved := 0
	for _, batch := range batches {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := r.snapshotBatch(ctx, batch)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		saved += n
	}
	r.logger.Info("snapshot round complete", zap.Int("saved", saved), zap.Int("pools", len(r.cfg.Targets)))
	return nil
}

func (r *Runner) snapshotBatch(ctx context.Context, batch []Target) (int, error) {
	results := make([]*pool.Result, len(batch))

	var wg sync.WaitGroup
	for i, target := range batch {
		i, target := i, target
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := r.querier.Query(ctx, target.Address, target.Kind)
			if err != nil {
				r.logger.Warn("pool query failed",
					zap.String("address", target.Address),
					zap.String("kind", string(target.Kind)),
					zap.Error(err),
				)
				return
			}
			results[i] = &result
		}()
	}
	wg.Wait()

	// An interrupted batch is dropped.
	if ctx.Err() != nil {
		return 0, nil
	}

	observedAt := r.clock().UTC()
	snapshots := make([]model.PoolSnapshot, 0, len(batch))
	var records []model.PoolRecord
	for _, result := range results {
		if result == nil {
			continue
		}
		snapshots = append(snapshots, Build(*result, observedAt))
		address := result.Address.String()
		if _, ok := r.recorded[address]; !ok {
			records = append(records, Record(*result, observedAt))
		}
	}

	if recorder, ok := r.storage.(storage.PoolRecorder); ok && len(records) > 0 {
		if err := recorder.UpsertPools(ctx, records); err != nil {
			return 0, fmt.Errorf("store pools: %w", err)
		}
	}
	for _, record := range records {
		r.recorded[record.Address] = struct{}{}
	}

	if err := r.storage.PutSnapshots(ctx, snapshots); err != nil {
		return 0, fmt.Errorf("store snapshots: %w", err)
	}
	r.metrics.RecordSnapshots(len(snapshots))
	return len(snapshots), nil
}
