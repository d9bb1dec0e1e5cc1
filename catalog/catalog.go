// SPDX-License-Identifier: MIT
// Package catalog persists computed fingerprints in an embedded BadgerDB so
// repeated runs skip the embedding work.
//
// Keys are content addressed: the embedder name plus the labeled graph
// itself (order and packed upper triangle). Any source, in any order, reads
// back exactly the fingerprints of the graphs it yields. A miss is not an error.
//
// Layout:
//
//	"fp/" len(embedder) (uint8) embedder n (uint16 BE) packed upper triangle -> 32-byte fingerprint
//
// The length prefix keeps names such as "walk" and "walk/64" in disjoint key
// ranges; big-endian n keeps the keys of one vertex count contiguous.
package catalog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphprint/fingerprint"
	"github.com/katalvlaran/graphprint/matrix"
)

var (
	// ErrClosed is returned by operations on a closed catalog.
	ErrClosed = errors.New("catalog: closed")

	// ErrCorrupt indicates a stored value that is not a fingerprint.
	ErrCorrupt = errors.New("catalog: corrupt value")

	// ErrConfig indicates an unusable configuration.
	ErrConfig = errors.New("catalog: invalid config")

	// ErrBadKey indicates a key that cannot be encoded.
	ErrBadKey = errors.New("catalog: invalid key")
)

// MaxEmbedderName is the longest embedder name a key can carry.
const MaxEmbedderName = 255

// Config holds configuration for a catalog database.
type Config struct {
	// Path is the database directory; ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM (tests).
	InMemory bool

	// SyncWrites fsyncs every batch.
	SyncWrites bool

	// Logger receives BadgerDB's internal messages; the zero value discards them.
	Logger zerolog.Logger
}

// DefaultConfig returns a persistent configuration rooted at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true, Logger: zerolog.Nop()}
}

// InMemoryConfig returns a configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true, Logger: zerolog.Nop()}
}

// Key addresses the fingerprint of one labeled graph under one embedder.
//   - Embedder must name the fingerprint function exactly (see walk.Embedder.Name).
//   - Code is matrix.Adjacency.PackedUpper of the graph.
type Key struct {
	Embedder string
	N        int
	Code     string
}

// KeyFor returns the key of a under the named embedder.
func KeyFor(embedder string, a *matrix.Adjacency) Key {
	return Key{Embedder: embedder, N: a.N(), Code: string(a.PackedUpper())}
}

// Record is a Key with its fingerprint.
type Record struct {
	Key
	Fingerprint fingerprint.Fingerprint
}

// Catalog is a fingerprint store. Safe for concurrent use until Close.
type Catalog struct {
	db *badger.DB
}

// Open opens (creating if needed) the catalog described by cfg.
func Open(cfg Config) (*Catalog, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, fmt.Errorf("Open: path is required for a persistent catalog: %w", ErrConfig)
		}
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("Open: create %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.
		WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(&badgerLogger{log: cfg.Logger})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("Open: badger: %w", err)
	}

	return &Catalog{db: db}, nil
}

// OpenInMemory opens a throwaway catalog.
func OpenInMemory() (*Catalog, error) { return Open(InMemoryConfig()) }

// Close releases the database. Safe to call more than once.
func (c *Catalog) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil

	return err
}

// String renders k as embedder/n=<n>/<hex code>.
func (k Key) String() string {
	return fmt.Sprintf("%s/n=%d/%x", k.Embedder, k.N, k.Code)
}

// orderPrefix returns the key prefix shared by every graph of order n under embedder.
func orderPrefix(embedder string, n int) ([]byte, error) {
	if embedder == "" || len(embedder) > MaxEmbedderName {
		return nil, fmt.Errorf("embedder %q: %w", embedder, ErrBadKey)
	}
	if n < 1 || n > 0xFFFF {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBadKey)
	}
	p := make([]byte, 0, 6+len(embedder))
	p = append(p, "fp/"...)
	p = append(p, byte(len(embedder)))
	p = append(p, embedder...)

	return binary.BigEndian.AppendUint16(p, uint16(n)), nil
}

// encode returns the storage key of k.
func (k Key) encode() ([]byte, error) {
	p, err := orderPrefix(k.Embedder, k.N)
	if err != nil {
		return nil, err
	}
	if want := (k.N*(k.N-1)/2 + 7) / 8; len(k.Code) != want {
		return nil, fmt.Errorf("code of %d bytes for n=%d, want %d: %w", len(k.Code), k.N, want, ErrBadKey)
	}

	return append(p, k.Code...), nil
}

// Get returns the fingerprint stored under k; ok is false on a miss.
func (c *Catalog) Get(k Key) (fingerprint.Fingerprint, bool, error) {
	fps, found, err := c.GetBatch([]Key{k})
	if err != nil {
		return fingerprint.Fingerprint{}, false, err
	}

	return fps[0], found[0], nil
}

// GetBatch looks up keys in one read transaction. found[i] reports a hit.
func (c *Catalog) GetBatch(keys []Key) ([]fingerprint.Fingerprint, []bool, error) {
	if c.db == nil {
		return nil, nil, ErrClosed
	}
	fps := make([]fingerprint.Fingerprint, len(keys))
	found := make([]bool, len(keys))
	err := c.db.View(func(txn *badger.Txn) error {
		for i, k := range keys {
			raw, err := k.encode()
			if err != nil {
				return err
			}
			item, err := txn.Get(raw)
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("get %v: %w", k, err)
			}
			val, err := item.ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("read %v: %w", k, err)
			}
			f, ok := fingerprint.FromBytes(val)
			if !ok {
				return fmt.Errorf("%v has %d bytes: %w", k, len(val), ErrCorrupt)
			}
			fps[i], found[i] = f, true
		}

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("GetBatch: %w", err)
	}

	return fps, found, nil
}

// PutBatch stores records with a write batch.
func (c *Catalog) PutBatch(records []Record) error {
	if c.db == nil {
		return ErrClosed
	}
	if len(records) == 0 {
		return nil
	}
	wb := c.db.NewWriteBatch()
	defer wb.Cancel()
	for _, r := range records {
		raw, err := r.Key.encode()
		if err != nil {
			return fmt.Errorf("PutBatch: %w", err)
		}
		val := r.Fingerprint
		if err = wb.Set(raw, val[:]); err != nil {
			return fmt.Errorf("PutBatch: %w", err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("PutBatch: flush: %w", err)
	}

	return nil
}

// Count returns how many fingerprints of order-n graphs are stored for embedder.
func (c *Catalog) Count(embedder string, n int) (int, error) {
	if c.db == nil {
		return 0, ErrClosed
	}
	prefix, err := orderPrefix(embedder, n)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	count := 0
	err = c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}

	return count, nil
}

// badgerLogger adapts zerolog to badger.Logger.
type badgerLogger struct {
	log zerolog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Str("component", "badger").Msgf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Str("component", "badger").Msgf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Str("component", "badger").Msgf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Trace().Str("component", "badger").Msgf(format, args...)
}
