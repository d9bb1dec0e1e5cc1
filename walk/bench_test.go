// Package walk_test provides benchmarks for the walk-count embedding.
package walk_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphprint/fingerprint"
	"github.com/katalvlaran/graphprint/walk"
)

var sinkF fingerprint.Fingerprint

func BenchmarkEmbed(b *testing.B) {
	rng := rand.New(rand.NewSource(1337))
	for _, n := range []int{8, 10, 16} {
		a := randomGraph(b, rng, n, 0.5)
		e := walk.New()
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				f, err := e.Embed(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}
