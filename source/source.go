// SPDX-License-Identifier: MIT
// Package: source
//
// Purpose:
//   - The GraphSource capability (Source, Iterator), shared sentinels and the
//     Collect helper.

package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphprint/matrix"
)

var (
	// ErrMalformed indicates a record that does not decode to a simple graph
	// of the requested order.
	ErrMalformed = errors.New("source: malformed graph record")

	// ErrBadOrder indicates a requested vertex count outside what the source supports.
	ErrBadOrder = errors.New("source: unsupported vertex count")
)

// Source opens a stream of all graphs of order n up to isomorphism, only the
// connected ones when connected is true.
type Source interface {
	Open(ctx context.Context, n int, connected bool) (Iterator, error)
}

// Iterator yields adjacency matrices one at a time.
//   - Next advances and reports whether a matrix is available.
//   - Matrix returns the current matrix. Matrices are immutable and may be
//     retained after Next.
//   - Err returns the first error that stopped iteration (nil at clean end).
//   - Close releases resources; it is safe to call more than once.
type Iterator interface {
	Next() bool
	Matrix() *matrix.Adjacency
	Err() error
	Close() error
}

// Collect drains a fresh iterator into a slice.
func Collect(ctx context.Context, src Source, n int, connected bool) ([]*matrix.Adjacency, error) {
	it, err := src.Open(ctx, n, connected)
	if err != nil {
		return nil, err
	}
	var out []*matrix.Adjacency
	for it.Next() {
		out = append(out, it.Matrix())
	}
	if err = it.Err(); err != nil {
		_ = it.Close()
		return nil, err
	}
	if err = it.Close(); err != nil {
		return nil, fmt.Errorf("Collect: close: %w", err)
	}

	return out, nil
}

// validateOrder rejects n < 1.
func validateOrder(method string, n int) error {
	if n < 1 {
		return fmt.Errorf("%s: n=%d: %w", method, n, ErrBadOrder)
	}

	return nil
}
