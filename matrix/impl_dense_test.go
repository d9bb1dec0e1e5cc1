// Package matrix_test contains unit tests for Dense and the checked products.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/graphprint/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive orders.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[uint32](0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense[uint64](-3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestAtSetOutOfBounds ensures At and Set return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense[uint64](2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v)
}

// TestFromAdjacencyDiagonalClone checks lifting, diagonal extraction and deep copies.
func TestFromAdjacencyDiagonalClone(t *testing.T) {
	a, err := matrix.ParseRows(pathP4)
	require.NoError(t, err)

	d, err := matrix.FromAdjacency[uint32](a)
	require.NoError(t, err)
	assert.Equal(t, 4, d.N())
	assert.Equal(t, []uint32{0, 0, 0, 0}, d.Diagonal())
	assert.Equal(t, "[0, 1, 0, 0]\n[1, 0, 1, 0]\n[0, 1, 0, 1]\n[0, 0, 1, 0]\n", d.String())

	c := d.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)

	_, err = matrix.FromAdjacency[uint64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulSquareDegrees verifies diag(A²) equals the degree sequence.
func TestMulSquareDegrees(t *testing.T) {
	a, err := matrix.ParseRows(pathP4)
	require.NoError(t, err)
	d, err := matrix.FromAdjacency[uint64](a)
	require.NoError(t, err)

	sq, err := matrix.Mul(d, d)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 2, 1}, sq.Diagonal())

	// A³ of a bipartite graph has a zero diagonal (no odd closed walks).
	cube, err := matrix.Mul(sq, d)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 0, 0, 0}, cube.Diagonal())
}

// TestMulIntoAliasing ensures dst may alias an operand.
func TestMulIntoAliasing(t *testing.T) {
	k3, err := matrix.NewAdjacency(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)
	d, err := matrix.FromAdjacency[uint32](k3)
	require.NoError(t, err)
	a := d.Clone()

	require.NoError(t, matrix.MulInto(d, d, a)) // d = A²
	require.NoError(t, matrix.MulInto(d, d, a)) // d = A³
	// K3: closed walks of length 3 at each vertex = 2.
	assert.Equal(t, []uint32{2, 2, 2}, d.Diagonal())
}

// TestMulErrors covers nil operands, shape mismatch and overflow.
func TestMulErrors(t *testing.T) {
	a, err := matrix.NewDense[uint32](2)
	require.NoError(t, err)
	b, err := matrix.NewDense[uint32](3)
	require.NoError(t, err)

	_, err = matrix.Mul(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Product term overflow.
	require.NoError(t, a.Set(0, 0, math.MaxUint32))
	require.NoError(t, a.Set(0, 1, 2))
	require.NoError(t, a.Set(1, 0, 2))
	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrOverflow)

	// Accumulation overflow: each term fits, the sum does not.
	ones, err := matrix.NewDense[uint32](2)
	require.NoError(t, err)
	halves, err := matrix.NewDense[uint32](2)
	require.NoError(t, err)
	half := uint32(math.MaxUint32/2 + 1)
	require.NoError(t, ones.Set(0, 0, 1))
	require.NoError(t, ones.Set(0, 1, 1))
	require.NoError(t, halves.Set(0, 0, half))
	require.NoError(t, halves.Set(1, 0, half))
	_, err = matrix.Mul(ones, halves)
	require.ErrorIs(t, err, matrix.ErrOverflow)

	// MaxUint64 itself is representable.
	w, err := matrix.NewDense[uint64](2)
	require.NoError(t, err)
	require.NoError(t, w.Set(0, 1, math.MaxUint64))
	require.NoError(t, w.Set(1, 0, 1))
	sq, err := matrix.Mul(w, w)
	require.NoError(t, err)
	assert.Equal(t, []uint64{math.MaxUint64, math.MaxUint64}, sq.Diagonal())
}
