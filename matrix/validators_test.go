// Package matrix_test contains unit tests for the row and permutation validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/graphprint/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidatePermutation covers length, range and duplicate failures.
func TestValidatePermutation(t *testing.T) {
	require.NoError(t, matrix.ValidatePermutation([]int{1, 2, 0}, 3))
	require.NoError(t, matrix.ValidatePermutation(nil, 0))
	require.ErrorIs(t, matrix.ValidatePermutation([]int{0, 1}, 3), matrix.ErrBadPermutation)
	require.ErrorIs(t, matrix.ValidatePermutation([]int{0, 3, 1}, 3), matrix.ErrBadPermutation)
	require.ErrorIs(t, matrix.ValidatePermutation([]int{0, 1, 1}, 3), matrix.ErrBadPermutation)
}

// TestValidateAdjacencyRowsPriority checks that shape errors win over content errors.
func TestValidateAdjacencyRowsPriority(t *testing.T) {
	// ragged AND non-binary: shape is reported first
	err := matrix.ValidateAdjacencyRows([][]uint8{{0, 5}, {1}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	// non-binary AND asymmetric: binary is reported first
	err = matrix.ValidateAdjacencyRows([][]uint8{{0, 5}, {0, 0}})
	require.ErrorIs(t, err, matrix.ErrNonBinary)

	require.NoError(t, matrix.ValidateAdjacencyRows([][]uint8{{0}}))
}
