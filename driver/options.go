// SPDX-License-Identifier: MIT
// Package: driver
//
// options.go - functional options. Option constructors panic on values that
// can only come from a programming error (non-positive sizes, inverted ranges).

package driver

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphprint/catalog"
)

// Defaults.
const (
	DefaultBatchSize   = 256
	DefaultMinVertices = 1
	DefaultMaxVertices = 10
)

type config struct {
	workers     int
	batchSize   int
	minVertices int
	maxVertices int
	connected   bool
	cat         *catalog.Catalog
	log         zerolog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers:     runtime.GOMAXPROCS(0),
		batchSize:   DefaultBatchSize,
		minVertices: DefaultMinVertices,
		maxVertices: DefaultMaxVertices,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures Run and RunN.
type Option func(*config)

// WithWorkers bounds the number of batches embedded concurrently. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("driver: WithWorkers(%d): need k ≥ 1", k))
	}

	return func(c *config) { c.workers = k }
}

// WithBatchSize sets how many matrices form one unit of parallel work.
// Panics if k < 1.
func WithBatchSize(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("driver: WithBatchSize(%d): need k ≥ 1", k))
	}

	return func(c *config) { c.batchSize = k }
}

// WithVertexRange sets the inclusive range of n visited by Run.
// Panics unless 1 ≤ lo ≤ hi.
func WithVertexRange(lo, hi int) Option {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("driver: WithVertexRange(%d, %d): need 1 ≤ lo ≤ hi", lo, hi))
	}

	return func(c *config) { c.minVertices, c.maxVertices = lo, hi }
}

// WithConnected restricts every stream to connected graphs.
func WithConnected(connected bool) Option {
	return func(c *config) { c.connected = connected }
}

// WithCatalog reuses and stores fingerprints in cat, keyed by embedder name
// and graph content, so one catalog may serve any mix of sources. A nil
// catalog disables caching.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *config) { c.cat = cat }
}

// WithLogger sets the progress logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}
