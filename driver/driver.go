// SPDX-License-Identifier: MIT
// Package driver runs the fingerprint comparison for each vertex count:
// it streams graphs from a source once, fingerprints every graph under every
// embedder in parallel batches, and detects collisions per embedder.
//
// Indices are assigned 0, 1, 2, … in source order. A source error is fatal for
// that n and no partial result is returned; an embedding error (such as a
// walk-count overflow) is fatal for the run.
package driver

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphprint/catalog"
	"github.com/katalvlaran/graphprint/collision"
	"github.com/katalvlaran/graphprint/embedding"
	"github.com/katalvlaran/graphprint/fingerprint"
	"github.com/katalvlaran/graphprint/matrix"
	"github.com/katalvlaran/graphprint/source"
)

// ErrNoEmbedders is returned when Run or RunN get an empty embedder list.
var ErrNoEmbedders = errors.New("driver: no embedders")

// Outcome is the collision picture of one embedder.
type Outcome struct {
	Name       string
	Groups     []collision.Group
	Implicated []int
}

// Result is the outcome of one vertex count.
//   - Graphs: number of graphs streamed.
//   - Outcomes: one per embedder, in the order given.
//   - Overlap: indices implicated under every embedder.
//   - CacheHits: fingerprints served from the catalog.
type Result struct {
	N         int
	Connected bool
	Graphs    int
	Outcomes  []Outcome
	Overlap   []int
	CacheHits int
}

// Outcome returns the outcome named name.
func (r Result) Outcome(name string) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Name == name {
			return o, true
		}
	}

	return Outcome{}, false
}

// batch is one unit of parallel work. fps[e][i] is the fingerprint of
// graphs[i] under embedder e.
type batch struct {
	start  int
	graphs []*matrix.Adjacency
	fps    [][]fingerprint.Fingerprint
}

// Run calls RunN for every n in the configured vertex range and stops at the
// first error.
func Run(ctx context.Context, src source.Source, embedders []embedding.Embedder, opts ...Option) ([]Result, error) {
	cfg := newConfig(opts...)
	results := make([]Result, 0, cfg.maxVertices-cfg.minVertices+1)
	for n := cfg.minVertices; n <= cfg.maxVertices; n++ {
		res, err := runN(ctx, src, n, embedders, cfg)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	return results, nil
}

// RunN fingerprints every graph of order n from src and detects collisions.
func RunN(ctx context.Context, src source.Source, n int, embedders []embedding.Embedder, opts ...Option) (Result, error) {
	return runN(ctx, src, n, embedders, newConfig(opts...))
}

func runN(ctx context.Context, src source.Source, n int, embedders []embedding.Embedder, cfg config) (Result, error) {
	if len(embedders) == 0 {
		return Result{}, ErrNoEmbedders
	}
	log := cfg.log.With().Int("n", n).Bool("connected", cfg.connected).Logger()
	started := time.Now()

	it, err := src.Open(ctx, n, cfg.connected)
	if err != nil {
		return Result{}, fmt.Errorf("RunN(n=%d): open: %w", n, err)
	}
	defer it.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	var (
		batches []*batch
		hits    atomic.Int64
		total   int
		cur     = &batch{}
	)
	dispatch := func() {
		b := cur
		batches = append(batches, b)
		cur = &batch{start: total}
		g.Go(func() error {
			h, err := embedBatch(b, n, embedders, cfg)
			hits.Add(int64(h))
			return err
		})
	}
	for gctx.Err() == nil && it.Next() {
		cur.graphs = append(cur.graphs, it.Matrix())
		total++
		if len(cur.graphs) == cfg.batchSize {
			dispatch()
		}
	}
	if len(cur.graphs) > 0 && gctx.Err() == nil {
		dispatch()
	}

	werr := g.Wait()
	if err = it.Err(); err != nil {
		return Result{}, fmt.Errorf("RunN(n=%d): source: %w", n, err)
	}
	if werr != nil {
		return Result{}, fmt.Errorf("RunN(n=%d): %w", n, werr)
	}
	if err = ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("RunN(n=%d): %w", n, err)
	}
	if err = it.Close(); err != nil {
		return Result{}, fmt.Errorf("RunN(n=%d): source: %w", n, err)
	}

	res := Result{N: n, Connected: cfg.connected, Graphs: total, CacheHits: int(hits.Load())}
	implicated := make([][]int, len(embedders))
	for e, emb := range embedders {
		entries := make([]collision.Entry, 0, total)
		for _, b := range batches {
			for i, f := range b.fps[e] {
				entries = append(entries, collision.Entry{Fingerprint: f, Index: b.start + i})
			}
		}
		groups := collision.Detect(entries)
		implicated[e] = collision.Implicated(groups)
		res.Outcomes = append(res.Outcomes, Outcome{Name: emb.Name(), Groups: groups, Implicated: implicated[e]})
		log.Debug().Str("embedding", emb.Name()).Int("groups", len(groups)).Int("implicated", len(implicated[e])).Msg("collisions")
	}
	res.Overlap = collision.Overlap(implicated...)

	log.Info().
		Int("graphs", total).
		Int("overlap", len(res.Overlap)).
		Int("cache_hits", res.CacheHits).
		Dur("elapsed", time.Since(started)).
		Msg("done")

	return res, nil
}

// embedBatch fills b.fps, serving from and storing to the catalog when set.
// It returns the number of cache hits.
func embedBatch(b *batch, n int, embedders []embedding.Embedder, cfg config) (int, error) {
	b.fps = make([][]fingerprint.Fingerprint, len(embedders))
	hits := 0
	for e, emb := range embedders {
		fps := make([]fingerprint.Fingerprint, len(b.graphs))
		found := make([]bool, len(b.graphs))
		var keys []catalog.Key
		if cfg.cat != nil {
			keys = make([]catalog.Key, len(b.graphs))
			for i, a := range b.graphs {
				keys[i] = catalog.KeyFor(emb.Name(), a)
			}
			cached, ok, err := cfg.cat.GetBatch(keys)
			if err != nil {
				return hits, fmt.Errorf("catalog: %w", err)
			}
			copy(fps, cached)
			copy(found, ok)
		}

		var fresh []catalog.Record
		for i, a := range b.graphs {
			if found[i] {
				hits++
				continue
			}
			f, err := emb.Embed(a)
			if err != nil {
				return hits, fmt.Errorf("%s: graph %d: %w", emb.Name(), b.start+i, err)
			}
			fps[i] = f
			if cfg.cat != nil {
				fresh = append(fresh, catalog.Record{Key: keys[i], Fingerprint: f})
			}
		}
		if cfg.cat != nil {
			if err := cfg.cat.PutBatch(fresh); err != nil {
				return hits, fmt.Errorf("catalog: %w", err)
			}
		}
		b.fps[e] = fps
	}
	if e := cfg.log.Trace(); e.Enabled() {
		e.Int("n", n).Int("start", b.start).Int("size", len(b.graphs)).Msg("batch embedded")
	}

	return hits, nil
}
