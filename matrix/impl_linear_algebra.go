// SPDX-License-Identifier: MIT
// Package matrix provides checked integer products over Dense matrices.
//
// Purpose:
//   - Multiply square integer matrices without ever wrapping around: every
//     product term and every partial sum is checked against the element width.
//   - Report the first overflowing coordinate via ErrOverflow so callers can
//     retry at a wider width or fail the run.
//
// Notes:
//   - Loop order is i-k-j (row of A streamed against rows of B) for cache locality.
//   - Zero entries of A are skipped; adjacency powers stay sparse for small k.

package matrix

import (
	"fmt"
	"math/bits"
)

// Operation name constants for unified error wrapping.
const (
	opMul     = "Mul"
	opMulInto = "MulInto"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkedMulAdd returns acc + x*y, or ok=false when the result exceeds limit.
// All three operands are already ≤ limit ≤ MaxUint64.
func checkedMulAdd(acc, x, y, limit uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 || lo > limit {
		return 0, false
	}
	sum, carry := bits.Add64(acc, lo, 0)
	if carry != 0 || sum > limit {
		return 0, false
	}

	return sum, true
}

// Mul returns the product a·b as a fresh matrix.
//
// Implementation:
//   - Stage 1: validate non-nil operands of equal order.
//   - Stage 2: delegate to MulInto with a freshly allocated destination.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOverflow (wrapped with coordinates).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul[T Element](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	dst := &Dense[T]{n: a.n, data: make([]T, a.n*a.n)}
	if err := MulInto(dst, a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return dst, nil
}

// MulInto writes a·b into dst. dst may alias a or b; the product is then
// computed into scratch and copied back.
//
// Implementation:
//   - Stage 1: validate shapes (all three of order n).
//   - Stage 2: for each row i, accumulate Σ_k a[i][k]·b[k][·] with checked
//     multiply-add into the output row.
//   - Stage 3: on overflow return ErrOverflow; dst is left unspecified.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOverflow.
//
// Complexity:
//   - Time O(n³), Space O(1) extra (O(n²) when dst aliases an operand).
//
// AI-Hints:
//   - Reuse two destinations in a ping-pong loop to compute powers without
//     allocating per step (see walk.Embedder).
func MulInto[T Element](dst, a, b *Dense[T]) error {
	if dst == nil || a == nil || b == nil {
		return matrixErrorf(opMulInto, ErrNilMatrix)
	}
	n := a.n
	if b.n != n || dst.n != n {
		return fmt.Errorf("%s: %dx%d · %dx%d -> %dx%d: %w",
			opMulInto, a.n, a.n, b.n, b.n, dst.n, dst.n, ErrDimensionMismatch)
	}

	out := dst.data
	if dst == a || dst == b {
		out = make([]T, n*n)
	}
	limit := uint64(^T(0))

	var (
		i, k, j int
		aik     uint64
		acc     uint64
		ok      bool
		rowA    []T
		rowB    []T
		rowOut  []T
	)
	for i = 0; i < n; i++ {
		rowA = a.data[i*n : (i+1)*n]
		rowOut = out[i*n : (i+1)*n]
		clear(rowOut)
		for k = 0; k < n; k++ {
			aik = uint64(rowA[k])
			if aik == 0 {
				continue
			}
			rowB = b.data[k*n : (k+1)*n]
			for j = 0; j < n; j++ {
				if rowB[j] == 0 {
					continue
				}
				acc, ok = checkedMulAdd(uint64(rowOut[j]), aik, uint64(rowB[j]), limit)
				if !ok {
					return fmt.Errorf("%s: (%d,%d): %w", opMulInto, i, j, ErrOverflow)
				}
				rowOut[j] = T(acc)
			}
		}
	}
	if dst == a || dst == b {
		copy(dst.data, out)
	}

	return nil
}
