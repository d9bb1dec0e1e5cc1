// Package matrix_test contains unit tests for the Adjacency type.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/graphprint/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathP4 is the path 0-1-2-3.
const pathP4 = `
	0100
	1010
	0101
	0010
`

// TestNewAdjacencyErrors covers every constructor sentinel.
func TestNewAdjacencyErrors(t *testing.T) {
	_, err := matrix.NewAdjacency(0, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewAdjacency(3, [][2]int{{0, 3}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewAdjacency(3, [][2]int{{-1, 0}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewAdjacency(3, [][2]int{{1, 1}})
	require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)
}

// TestNewAdjacencyDuplicateEdges verifies duplicate and reversed edges collapse.
func TestNewAdjacencyDuplicateEdges(t *testing.T) {
	a, err := matrix.NewAdjacency(3, [][2]int{{0, 1}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 1, a.EdgeCount())
	assert.True(t, a.Has(0, 1))
	assert.True(t, a.Has(1, 0))
	assert.False(t, a.Has(0, 2))
}

// TestFromRowsValidation checks the validator chain through the constructor.
func TestFromRowsValidation(t *testing.T) {
	cases := []struct {
		name string
		rows [][]uint8
		want error
	}{
		{"empty", nil, matrix.ErrBadShape},
		{"ragged", [][]uint8{{0, 1}, {1}}, matrix.ErrNonSquare},
		{"nonbinary", [][]uint8{{0, 2}, {2, 0}}, matrix.ErrNonBinary},
		{"loop", [][]uint8{{1, 0}, {0, 0}}, matrix.ErrNonZeroDiagonal},
		{"asymmetric", [][]uint8{{0, 1}, {0, 0}}, matrix.ErrAsymmetry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromRows(tc.rows)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestFromRowsCopiesInput ensures later mutation of the input does not leak in.
func TestFromRowsCopiesInput(t *testing.T) {
	rows := [][]uint8{{0, 1}, {1, 0}}
	a, err := matrix.FromRows(rows)
	require.NoError(t, err)
	rows[0][1] = 0
	assert.True(t, a.Has(0, 1))
}

// TestParseRows covers indentation tolerance and bad runes.
func TestParseRows(t *testing.T) {
	a, err := matrix.ParseRows(pathP4)
	require.NoError(t, err)
	assert.Equal(t, 4, a.N())
	assert.Equal(t, 3, a.EdgeCount())
	assert.Equal(t, "0100\n1010\n0101\n0010\n", a.String())

	_, err = matrix.ParseRows("01\n1x")
	require.ErrorIs(t, err, matrix.ErrParse)

	_, err = matrix.ParseRows("   \n\n")
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestAdjacencyQueries exercises the read-only accessors on P4.
func TestAdjacencyQueries(t *testing.T) {
	a, err := matrix.ParseRows(pathP4)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, a.Neighbors(1))
	assert.Nil(t, a.Neighbors(4))
	assert.Equal(t, 1, a.Degree(0))
	assert.Equal(t, 2, a.Degree(2))
	assert.Equal(t, 0, a.Degree(-1))
	assert.Equal(t, 2, a.MaxDegree())
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, a.Edges())
	assert.True(t, a.Connected())

	v, err := a.At(2, 3)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v)
	_, err = a.At(4, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	rows := a.Rows()
	rows[0][1] = 0
	assert.True(t, a.Has(0, 1), "Rows must return a copy")
}

// TestNeighborsIsolation ensures callers cannot reach the internal neighbor lists.
func TestNeighborsIsolation(t *testing.T) {
	a, err := matrix.ParseRows(pathP4)
	require.NoError(t, err)

	nb := a.Neighbors(1)
	nb[0] = 3
	assert.Equal(t, []int{0, 2}, a.Neighbors(1))
	assert.Equal(t, 2, a.Degree(1))

	buf := make([]int, 0, 4)
	buf = a.AppendNeighbors(buf, 2)
	assert.Equal(t, []int{1, 3}, buf)
	buf[0] = 0
	assert.Equal(t, []int{1, 3}, a.AppendNeighbors(nil, 2))
	assert.Equal(t, []int{7}, a.AppendNeighbors([]int{7}, 9))
}

// TestPackedUpper checks the bit layout and that it separates labelings.
func TestPackedUpper(t *testing.T) {
	a, err := matrix.ParseRows(pathP4)
	require.NoError(t, err)
	// Pairs (0,1)(0,2)(0,3)(1,2)(1,3)(2,3) = 1 0 0 1 0 1, padded: 1001 0100.
	assert.Equal(t, []byte{0x94}, a.PackedUpper())

	b, err := a.Permute([]int{2, 0, 3, 1})
	require.NoError(t, err)
	assert.NotEqual(t, a.PackedUpper(), b.PackedUpper())

	k1, err := matrix.NewAdjacency(1, nil)
	require.NoError(t, err)
	assert.Empty(t, k1.PackedUpper())
}

// TestConnected covers the single vertex and a disconnected pair.
func TestConnected(t *testing.T) {
	k1, err := matrix.NewAdjacency(1, nil)
	require.NoError(t, err)
	assert.True(t, k1.Connected())

	twoK2, err := matrix.NewAdjacency(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	assert.False(t, twoK2.Connected())
}

// TestPermute relabels P4 so that its endpoints move and checks the mapping.
func TestPermute(t *testing.T) {
	a, err := matrix.ParseRows(pathP4)
	require.NoError(t, err)

	// 0→2, 1→0, 2→3, 3→1: edges {0,1},{1,2},{2,3} become {2,0},{0,3},{3,1}.
	b, err := a.Permute([]int{2, 0, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 2}, {0, 3}, {1, 3}}, b.Edges())
	assert.Equal(t, a.EdgeCount(), b.EdgeCount())
	assert.False(t, a.Equal(b))

	id, err := a.Permute([]int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.True(t, a.Equal(id))

	_, err = a.Permute([]int{0, 0, 1, 2})
	require.ErrorIs(t, err, matrix.ErrBadPermutation)
	_, err = a.Permute([]int{0, 1})
	require.ErrorIs(t, err, matrix.ErrBadPermutation)
}
