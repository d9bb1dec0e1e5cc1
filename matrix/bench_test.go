// Package matrix_test provides benchmarks for the checked integer products.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphprint/matrix"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{8, 16, 64}

// sink to defeat dead-code elimination
var sinkD *matrix.Dense[uint64]

// randomAdjacency builds a G(n, 1/2) graph from a fixed seed.
func randomAdjacency(b *testing.B, n int, seed int64) *matrix.Adjacency {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Intn(2) == 1 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	a, err := matrix.NewAdjacency(n, edges)
	if err != nil {
		b.Fatal(err)
	}

	return a
}

func BenchmarkMulInto(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a, err := matrix.FromAdjacency[uint64](randomAdjacency(b, n, 1337))
			if err != nil {
				b.Fatal(err)
			}
			dst, _ := matrix.NewDense[uint64](n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err = matrix.MulInto(dst, a, a); err != nil {
					b.Fatal(err)
				}
			}
			sinkD = dst
		})
	}
}
