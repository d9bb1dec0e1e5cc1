// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly square row-major buffer with the explicit index
//     formula i*n + j, generic over the unsigned element width.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Mul/MulInto (impl_linear_algebra.go) operate on the flat data slice directly.
//   - Use Element = uint32 for small n (half the memory), uint64 otherwise.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone: O(n²); Diagonal: O(n).

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ---------- error context tags ----------

const (
	ctxAt            = "At"
	ctxSet           = "Set"
	ctxNewDense      = "NewDense"
	ctxFromAdjacency = "FromAdjacency"
)

// Element is the set of integer widths a Dense matrix can hold.
// Only the unsigned fixed widths used for walk counting are admitted.
type Element interface {
	constraints.Unsigned
	~uint32 | ~uint64
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square row-major integer matrix.
//   - n is the order (rows == cols == n).
//   - data is a flat buffer of length n*n (offset = i*n + j).
type Dense[T Element] struct {
	n    int
	data []T
}

// NewDense allocates a zero-filled n×n matrix.
//
// Errors:
//   - ErrBadShape when n ≤ 0.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense[T Element](n int) (*Dense[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(n=%d): %w", ctxNewDense, n, ErrBadShape)
	}

	return &Dense[T]{n: n, data: make([]T, n*n)}, nil
}

// FromAdjacency lifts a 0/1 adjacency into a Dense of width T.
// Errors: ErrNilMatrix on nil input.
func FromAdjacency[T Element](a *Adjacency) (*Dense[T], error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromAdjacency, ErrNilMatrix)
	}
	d := &Dense[T]{n: a.n, data: make([]T, len(a.data))}
	for k, v := range a.data {
		d.data[k] = T(v)
	}

	return d, nil
}

// N returns the order of the matrix.
func (d *Dense[T]) N() int { return d.n }

// inRange reports whether (i,j) addresses a stored element.
func (d *Dense[T]) inRange(i, j int) bool {
	return i >= 0 && i < d.n && j >= 0 && j < d.n
}

// At returns the element at (i, j).
// Errors: ErrOutOfRange.
func (d *Dense[T]) At(i, j int) (T, error) {
	if !d.inRange(i, j) {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Set writes v at (i, j).
// Errors: ErrOutOfRange.
func (d *Dense[T]) Set(i, j int, v T) error {
	if !d.inRange(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	d.data[i*d.n+j] = v

	return nil
}

// Diagonal returns a fresh copy of the main diagonal, d[i] = M[i][i].
// For M = A^k this is the closed-walk count of length k at each vertex.
func (d *Dense[T]) Diagonal() []T {
	diag := make([]T, d.n)
	for i := 0; i < d.n; i++ {
		diag[i] = d.data[i*d.n+i]
	}

	return diag
}

// Clone returns a deep copy.
func (d *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{n: d.n, data: append([]T(nil), d.data...)}
}

// String renders each row as "[a, b, c]" followed by a newline.
func (d *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < d.n; i++ {
		b.WriteString("[")
		for j := 0; j < d.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatUint(uint64(d.data[i*d.n+j]), 10))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
