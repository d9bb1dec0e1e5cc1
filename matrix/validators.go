// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for adjacency validation.
//   - Keep constructors minimal by delegating shape/binary/diagonal/symmetry
//     checks here.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     branch with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) over the upper triangle only.
//
// Note:
//   - ValidateAdjacencyRows follows a fixed sequence:
//     Shape → Binary → ZeroDiagonal → Symmetric.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquareRows ensures rows is a non-empty n×n table.
//
// Errors: ErrBadShape when len(rows)==0, ErrNonSquare when any row length != n.
// Complexity: O(n).
func ValidateSquareRows(rows [][]uint8) error {
	n := len(rows)
	if n == 0 {
		return validatorErrorf("ValidateSquareRows", ErrBadShape)
	}
	for i := range rows {
		if len(rows[i]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateSquareRows: row %d has %d entries, want %d", i, len(rows[i]), n), ErrNonSquare)
		}
	}

	return nil
}

// ValidateBinary ensures every entry is 0 or 1.
// Assumes rows is square (caller must ensure).
// Complexity: O(n²).
func ValidateBinary(rows [][]uint8) error {
	for i := range rows {
		for j, v := range rows[i] {
			if v > 1 {
				return validatorErrorf(fmt.Sprintf("ValidateBinary: (%d,%d)=%d", i, j, v), ErrNonBinary)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal ensures the graph has no self-loops.
// Assumes rows is square (caller must ensure).
// Complexity: O(n).
func ValidateZeroDiagonal(rows [][]uint8) error {
	for i := range rows {
		if rows[i][i] != 0 {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal: (%d,%d)", i, i), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric ensures rows[i][j] == rows[j][i] for all i<j.
// Assumes rows is square (caller must ensure).
// Complexity: O(n²/2).
func ValidateSymmetric(rows [][]uint8) error {
	n := len(rows)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric: (%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateAdjacencyRows runs the full simple-graph validation chain.
//
// Implementation:
//   - Stage 1: ValidateSquareRows.
//   - Stage 2: ValidateBinary.
//   - Stage 3: ValidateZeroDiagonal.
//   - Stage 4: ValidateSymmetric.
//
// Complexity: O(n²).
func ValidateAdjacencyRows(rows [][]uint8) error {
	if err := ValidateSquareRows(rows); err != nil {
		return err
	}
	if err := ValidateBinary(rows); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(rows); err != nil {
		return err
	}

	return ValidateSymmetric(rows)
}

// ValidatePermutation ensures perm is a bijection on [0, n).
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return validatorErrorf(fmt.Sprintf("ValidatePermutation: len=%d, want %d", len(perm), n), ErrBadPermutation)
	}
	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return validatorErrorf(fmt.Sprintf("ValidatePermutation: perm[%d]=%d", i, p), ErrBadPermutation)
		}
		seen[p] = true
	}

	return nil
}
