package storage

import (
	"context"
	"errors"

	"rayScope/internal/model"
)

// Storage defines a sink for pool snapshots.
type Storage interface {
	PutSnapshots(ctx context.Context, snapshots []model.PoolSnapshot) error
}

// PoolRecorder is implemented by sinks that also keep static pool descriptions.
type PoolRecorder interface {
	UpsertPools(ctx context.Context, pools []model.PoolRecord) error
}

// Multi writes to every sink in order and reports all failures.
type Multi []Storage

func (m Multi) PutSnapshots(ctx context.Context, snapshots []model.PoolSnapshot) error {
	var errs []error
	for _, sink := range m {
		if err := sink.PutSnapshots(ctx, snapshots); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) UpsertPools(ctx context.Context, pools []model.PoolRecord) error {
	var errs []error
	for _, sink := range m {
		recorder, ok := sink.(PoolRecorder)
		if !ok {
			continue
		}
		if err := recorder.UpsertPools(ctx, pools); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
