// SPDX-License-Identifier: MIT
// Package: walk
//
// Purpose:
//   - Compute closed-walk diagonals of adjacency powers with checked integers.
//   - Reduce them to a Fingerprint under the configured layout.
//
// Complexity:
//   - Time O(n⁴) (n−1 products of O(n³)), Space O(n²) for two ping-pong buffers
//     plus O(n²) recorded diagonal entries.

package walk

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphprint/fingerprint"
	"github.com/katalvlaran/graphprint/matrix"
)

// Width safety bounds. A closed walk count of length ℓ ≤ n is at most
// Δ^(ℓ−1) ≤ (n−1)^(n−1); these are the largest n for which that bound fits.
const (
	MaxSafeVertices32 = 10 // 9^9  < 2^32
	MaxSafeVertices64 = 16 // 15^15 < 2^64
)

// SafeWidth returns the narrowest width whose counts provably cannot overflow
// for any graph of order n. Beyond MaxSafeVertices64 it returns Width64;
// arithmetic stays checked and may report ErrOverflow.
func SafeWidth(n int) Width {
	if n <= MaxSafeVertices32 {
		return Width32
	}

	return Width64
}

// Embedder computes walk-count fingerprints. The zero value is not usable;
// construct with New.
type Embedder struct {
	width  Width
	layout Layout
}

// New returns an Embedder with Auto width and ByVertex layout unless
// overridden by opts.
func New(opts ...Option) *Embedder {
	e := &Embedder{width: Auto, layout: ByVertex}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Name identifies the embedder in reports and cache keys: "walk" or
// "walk-length", suffixed with "/32" or "/64" when the width is forced.
// Fingerprints are only comparable between embedders of equal Name: the
// word size is part of the hashed bytes.
func (e *Embedder) Name() string {
	name := "walk"
	if e.layout == ByLength {
		name = "walk-length"
	}
	if e.width != Auto {
		name += "/" + e.width.String()
	}

	return name
}

// Width returns the configured width (possibly Auto).
func (e *Embedder) Width() Width { return e.width }

// Layout returns the configured layout.
func (e *Embedder) Layout() Layout { return e.layout }

// Embed returns the walk-count fingerprint of a.
//
// Implementation:
//   - Stage 1: resolve Auto to SafeWidth(n).
//   - Stage 2: record diag(A^2) … diag(A^(k+1)), k = max(2,n) − 1.
//   - Stage 3: hash by layout.
//
// Errors:
//   - ErrNilGraph; ErrOverflow (also matching matrix.ErrOverflow) when a count
//     does not fit the width.
func (e *Embedder) Embed(a *matrix.Adjacency) (fingerprint.Fingerprint, error) {
	if a == nil {
		return fingerprint.Fingerprint{}, ErrNilGraph
	}
	w := e.width
	if w == Auto {
		w = SafeWidth(a.N())
	}
	if w == Width32 {
		return embedAt[uint32](a, e.layout)
	}

	return embedAt[uint64](a, e.layout)
}

// embedAt runs the embedding at element width T.
func embedAt[T matrix.Element](a *matrix.Adjacency, layout Layout) (fingerprint.Fingerprint, error) {
	diags, err := diagonals[T](a)
	if err != nil {
		return fingerprint.Fingerprint{}, err
	}
	if layout == ByLength {
		h := fingerprint.NewHasher()
		for _, d := range diags {
			fingerprint.FeedScalars(h, d)
		}

		return fingerprint.Sum(h), nil
	}

	return fingerprint.SumTuples(transpose(diags, a.N())), nil
}

// Profiles returns the per-vertex walk profiles computed at 64 bits:
// profiles[v][i] = (A^(i+2))[v][v].
// Errors: ErrNilGraph, ErrOverflow.
func Profiles(a *matrix.Adjacency) ([][]uint64, error) {
	if a == nil {
		return nil, ErrNilGraph
	}
	diags, err := diagonals[uint64](a)
	if err != nil {
		return nil, err
	}

	return transpose(diags, a.N()), nil
}

// diagonals records diag(A^2) … diag(A^(k+1)) with k = max(2,n) − 1.
func diagonals[T matrix.Element](a *matrix.Adjacency) ([][]T, error) {
	n := a.N()
	base, err := matrix.FromAdjacency[T](a)
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}
	cur := base.Clone()
	next, err := matrix.NewDense[T](n)
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}

	k := max(2, n) - 1
	diags := make([][]T, 0, k)
	for step := 0; step < k; step++ {
		if err = matrix.MulInto(next, cur, base); err != nil {
			if errors.Is(err, matrix.ErrOverflow) {
				return nil, fmt.Errorf("%w: A^%d of order %d: %w", ErrOverflow, step+2, n, err)
			}

			return nil, fmt.Errorf("walk: A^%d: %w", step+2, err)
		}
		diags = append(diags, next.Diagonal())
		cur, next = next, cur
	}

	return diags, nil
}

// transpose turns length-major diagonals into vertex-major profiles.
func transpose[T matrix.Element](diags [][]T, n int) [][]T {
	profiles := make([][]T, n)
	for v := 0; v < n; v++ {
		profiles[v] = make([]T, len(diags))
		for i := range diags {
			profiles[v][i] = diags[i][v]
		}
	}

	return profiles
}
