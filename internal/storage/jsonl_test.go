package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"rayScope/internal/model"
)

func TestJsonlStorageAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshots.jsonl")
	sink := NewJsonlStorage(path)
	ctx := context.Background()

	first := model.PoolSnapshot{Address: "a", Kind: model.KindV4, Price: decimal.NewFromInt(2), ObservedAt: time.Unix(10, 0).UTC()}
	second := model.PoolSnapshot{Address: "b", Kind: model.KindCLMM, Price: decimal.NewFromInt(3), ObservedAt: time.Unix(20, 0).UTC()}

	if err := sink.PutSnapshots(ctx, []model.PoolSnapshot{first}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := sink.PutSnapshots(ctx, []model.PoolSnapshot{second}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if err := sink.PutSnapshots(ctx, nil); err != nil {
		t.Fatalf("empty write: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	var addresses []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var decoded model.PoolSnapshot
		if err := json.Unmarshal(scanner.Bytes(), &decoded); err != nil {
			t.Fatalf("unmarshal line: %v", err)
		}
		addresses = append(addresses, decoded.Address)
	}
	if len(addresses) != 2 || addresses[0] != "a" || addresses[1] != "b" {
		t.Fatalf("unexpected lines: %v", addresses)
	}
}

type failingSink struct{ err error }

func (f failingSink) PutSnapshots(context.Context, []model.PoolSnapshot) error { return f.err }

type recordingSink struct {
	snapshots int
	pools     int
}

func (r *recordingSink) PutSnapshots(_ context.Context, s []model.PoolSnapshot) error {
	r.snapshots += len(s)
	return nil
}

func (r *recordingSink) UpsertPools(_ context.Context, p []model.PoolRecord) error {
	r.pools += len(p)
	return nil
}

func TestMultiWritesEverySink(t *testing.T) {
	errDown := errors.New("sink down")
	recorder := &recordingSink{}
	multi := Multi{failingSink{err: errDown}, recorder}

	err := multi.PutSnapshots(context.Background(), []model.PoolSnapshot{{Address: "a"}})
	if !errors.Is(err, errDown) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if recorder.snapshots != 1 {
		t.Fatalf("later sinks must still be written")
	}

	if err := multi.UpsertPools(context.Background(), []model.PoolRecord{{Address: "a"}}); err != nil {
		t.Fatalf("upsert pools: %v", err)
	}
	if recorder.pools != 1 {
		t.Fatalf("expected pool records on recorder sink")
	}
}
