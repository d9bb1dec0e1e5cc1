// Package walk_test holds graph fixtures shared by the walk tests.
package walk_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphprint/matrix"
	"github.com/stretchr/testify/require"
)

// The 4×4 rook's graph and the Shrikhande graph, both SRG(16,6,2,2).
const (
	srgRook = `
0111111000000000
1011000111000000
1101000000111000
1110000000000111
1000011100100100
1000101010010010
1000110001001001
0100100011100100
0100010101010010
0100001110001001
0010100100011100
0010010010101010
0010001001110001
0001100100100011
0001010010010101
0001001001001110`

	srgShrikhande = `
0111111000000000
1011000111000000
1100100100110000
1100010010001100
1010001000101010
1001001000010101
1000110001000011
0110000001010110
0101000001101001
0100001110000011
0010100010011001
0010010100100101
0001100010100110
0001010100011010
0000101101001100
0000011011110000`
)

func mustParse(t testing.TB, text string) *matrix.Adjacency {
	t.Helper()
	a, err := matrix.ParseRows(text)
	require.NoError(t, err)
	return a
}

func mustEdges(t testing.TB, n int, edges [][2]int) *matrix.Adjacency {
	t.Helper()
	a, err := matrix.NewAdjacency(n, edges)
	require.NoError(t, err)
	return a
}

func cycle(t testing.TB, n int) *matrix.Adjacency {
	edges := make([][2]int, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]int{i, (i + 1) % n}
	}
	return mustEdges(t, n, edges)
}

// randomGraph draws G(n, p) from a seeded source.
func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64) *matrix.Adjacency {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return mustEdges(t, n, edges)
}
