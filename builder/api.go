// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - the Build orchestrator and the sketch every constructor writes to.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Resolves cfg, runs cons in order,
//     validates the union once through matrix.NewAdjacency.
//   - Each constructor claims a contiguous vertex block; blocks never share
//     edges, so the result is the disjoint union of the parts.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphprint/matrix"
)

// sketch accumulates vertices and edges of the union under construction.
type sketch struct {
	n     int
	edges [][2]int
}

// block reserves k fresh vertices and returns the index of the first.
func (s *sketch) block(k int) int {
	off := s.n
	s.n += k

	return off
}

// edge records the undirected edge {u,v} (global indices).
func (s *sketch) edge(u, v int) {
	s.edges = append(s.edges, [2]int{u, v})
}

// Constructor appends one component to the sketch. Constructors MUST
// validate parameters first and return wrapped sentinels, never panic.
type Constructor func(s *sketch, cfg builderConfig) error

// Build resolves opts, applies cons in order and returns the adjacency of the
// disjoint union.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or an empty union.
//   - Constructor sentinels, wrapped as "Build: %w".
//
// Complexity:
//   - O(n² + Σ cost(cons)).
func Build(opts []Option, cons ...Constructor) (*matrix.Adjacency, error) {
	cfg := newBuilderConfig(opts...)
	s := &sketch{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	if s.n == 0 {
		return nil, fmt.Errorf("Build: no vertices: %w", ErrConstructFailed)
	}
	a, err := matrix.NewAdjacency(s.n, s.edges)
	if err != nil {
		return nil, fmt.Errorf("Build: %v: %w", err, ErrConstructFailed)
	}

	return a, nil
}
