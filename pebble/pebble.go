// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/units"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/vaultvm/state"
)

var (
	_ state.Mutable = (*Database)(nil)
	_ state.Batcher = (*Database)(nil)

	ErrClosed = errors.New("database closed")
)

type Config struct {
	CacheSize                   int64 `json:"cacheSize" koanf:"cachesize"`
	BytesPerSync                int   `json:"bytesPerSync" koanf:"bytespersync"`
	WALBytesPerSync             int   `json:"walBytesPerSync" koanf:"walbytespersync"` // 0 means no background syncing
	MemTableStopWritesThreshold int   `json:"memTableStopWritesThreshold" koanf:"memtablestopwritesthreshold"`
	MaxOpenFiles                int   `json:"maxOpenFiles" koanf:"maxopenfiles"`
	Sync                        bool  `json:"sync" koanf:"sync"`
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:                   64 * units.MiB,
		BytesPerSync:                1 * units.MiB,
		WALBytesPerSync:             1 * units.MiB,
		MemTableStopWritesThreshold: 8,
		MaxOpenFiles:                4_096,
		Sync:                        true,
	}
}

// Database is a persistent [state.Mutable] backed by pebble.
type Database struct {
	db        *pebble.DB
	writeOpts *pebble.WriteOptions
	metrics   *metrics

	closeOnce sync.Once
	closing   chan struct{}
	done      sync.WaitGroup
}

func New(file string, cfg Config) (*Database, *prometheus.Registry, error) {
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}
	d := &Database{
		metrics: metrics,
		closing: make(chan struct{}),
	}
	if cfg.Sync {
		d.writeOpts = pebble.Sync
	} else {
		d.writeOpts = pebble.NoSync
	}

	cache := pebble.NewCache(cfg.CacheSize)
	defer cache.Unref()
	opts := &pebble.Options{
		Cache:                       cache,
		BytesPerSync:                cfg.BytesPerSync,
		WALBytesPerSync:             cfg.WALBytesPerSync,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MaxOpenFiles:                cfg.MaxOpenFiles,
		EventListener: &pebble.EventListener{
			CompactionBegin: d.onCompactionBegin,
			CompactionEnd:   d.onCompactionEnd,
			WriteStallBegin: d.onWriteStallBegin,
			WriteStallEnd:   d.onWriteStallEnd,
		},
	}
	db, err := pebble.Open(file, opts)
	if err != nil {
		return nil, nil, err
	}
	d.db = db

	d.done.Add(1)
	go func() {
		defer d.done.Done()
		d.collectMetrics()
	}()
	return d, registry, nil
}

func (d *Database) GetValue(_ context.Context, key []byte) ([]byte, error) {
	start := time.Now()
	defer func() {
		d.metrics.getLatency.Observe(float64(time.Since(start)))
	}()

	v, closer, err := d.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return append([]byte(nil), v...), nil
}

func (d *Database) Insert(_ context.Context, key []byte, value []byte) error {
	return d.db.Set(key, value, d.writeOpts)
}

func (d *Database) Remove(_ context.Context, key []byte) error {
	return d.db.Delete(key, d.writeOpts)
}

func (d *Database) NewBatch() state.Batch {
	return &batch{b: d.db.NewBatch(), writeOpts: d.writeOpts}
}

func (d *Database) Close() error {
	err := ErrClosed
	d.closeOnce.Do(func() {
		close(d.closing)
		d.done.Wait()
		err = d.db.Close()
	})
	return err
}

type batch struct {
	b         *pebble.Batch
	writeOpts *pebble.WriteOptions
}

func (b *batch) Put(key []byte, value []byte) {
	// pebble batches only fail on a closed batch, which Write prevents.
	_ = b.b.Set(key, value, nil)
}

func (b *batch) Delete(key []byte) {
	_ = b.b.Delete(key, nil)
}

func (b *batch) Write(context.Context) error {
	defer b.b.Close()
	return b.b.Commit(b.writeOpts)
}
