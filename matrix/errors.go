// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and kernels MUST return these sentinels (optionally
// wrapped with call-site context) and tests MUST check them via errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Sentinels are returned wrapped as fmt.Errorf("Ctx: %w", ErrX) at the
// detection site; callers branch with errors.Is.
//
// ERROR PRIORITY (enforced in validators):
// shape -> binary entries -> diagonal -> symmetry.

var (
	// ErrBadShape is returned when a requested shape is invalid (n <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions in Mul.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but rows differ in length.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonBinary signals an adjacency entry outside {0,1}.
	ErrNonBinary = errors.New("matrix: non-binary adjacency entry")

	// ErrAsymmetry signals that A[i][j] != A[j][i] for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a self-loop in a simple-graph adjacency.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOverflow indicates that an integer product or sum does not fit the
	// element width. Kernels never wrap silently.
	ErrOverflow = errors.New("matrix: integer overflow")

	// ErrBadPermutation indicates that a vertex permutation is not a bijection on [0, n).
	ErrBadPermutation = errors.New("matrix: invalid permutation")

	// ErrParse indicates a textual adjacency row contains a rune other than '0' or '1'.
	ErrParse = errors.New("matrix: malformed adjacency text")
)
