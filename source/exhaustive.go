// SPDX-License-Identifier: MIT
// Package: source
//
// Purpose:
//   - In-process enumeration of all graphs on n ≤ MaxExhaustiveVertices
//     vertices up to isomorphism.
//
// Implementation:
//   - A labeled graph is coded by its upper triangle: pair k (row-major i<j)
//     is bit k of the code.
//   - A code is canonical when no vertex permutation maps it to a smaller
//     code. Codes are scanned in ascending order, so representatives are
//     emitted in ascending canonical-code order.
//   - Permutations come from gonum's combin.PermutationGenerator, turned into
//     pair-index maps once per n.
//
// Complexity:
//   - O(2^(n(n-1)/2) · n! · n²) worst case; early exit on the first smaller
//     image keeps the practical cost far below that for n ≤ 6.

package source

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/graphprint/matrix"
)

// MaxExhaustiveVertices bounds Exhaustive; beyond it use Geng or Graph6Dir.
const MaxExhaustiveVertices = 6

// ctxCheckEvery is how many codes are scanned between context checks.
const ctxCheckEvery = 1 << 10

// Exhaustive enumerates canonical representatives without external tools.
type Exhaustive struct{}

// Open implements Source.
// Errors: ErrBadOrder when n < 1 or n > MaxExhaustiveVertices.
func (Exhaustive) Open(ctx context.Context, n int, connected bool) (Iterator, error) {
	if err := validateOrder("Exhaustive.Open", n); err != nil {
		return nil, err
	}
	if n > MaxExhaustiveVertices {
		return nil, fmt.Errorf("Exhaustive.Open: n=%d > %d: %w", n, MaxExhaustiveVertices, ErrBadOrder)
	}

	pairs := pairList(n)

	return &exhaustiveIterator{
		ctx:       ctx,
		n:         n,
		connected: connected,
		pairs:     pairs,
		pairMaps:  pairMaps(n, pairs),
		limit:     uint64(1) << len(pairs),
	}, nil
}

// pairList returns the row-major list of pairs i<j.
func pairList(n int) [][2]int {
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	return pairs
}

// pairMaps returns, for every non-identity permutation π of [0,n), the map
// k -> index of the pair {π(i), π(j)} where pair k = {i, j}.
func pairMaps(n int, pairs [][2]int) [][]int {
	index := make([][]int, n)
	for i := range index {
		index[i] = make([]int, n)
	}
	for k, p := range pairs {
		index[p[0]][p[1]] = k
		index[p[1]][p[0]] = k
	}

	var maps [][]int
	gen := combin.NewPermutationGenerator(n, n)
	perm := make([]int, n)
	for gen.Next() {
		perm = gen.Permutation(perm)
		if isIdentity(perm) {
			continue
		}
		m := make([]int, len(pairs))
		for k, p := range pairs {
			m[k] = index[perm[p[0]]][perm[p[1]]]
		}
		maps = append(maps, m)
	}

	return maps
}

func isIdentity(perm []int) bool {
	for i, p := range perm {
		if i != p {
			return false
		}
	}

	return true
}

type exhaustiveIterator struct {
	ctx       context.Context
	n         int
	connected bool
	pairs     [][2]int
	pairMaps  [][]int
	limit     uint64
	next      uint64
	cur       *matrix.Adjacency
	err       error
}

// Next implements Iterator.
func (it *exhaustiveIterator) Next() bool {
	it.cur = nil
	if it.err != nil {
		return false
	}
	for ; it.next < it.limit; it.next++ {
		if it.next%ctxCheckEvery == 0 {
			if err := it.ctx.Err(); err != nil {
				it.err = fmt.Errorf("Exhaustive: %w", err)
				return false
			}
		}
		code := it.next
		if !it.canonical(code) {
			continue
		}
		a, err := it.decode(code)
		if err != nil {
			it.err = err
			return false
		}
		if it.connected && !a.Connected() {
			continue
		}
		it.cur = a
		it.next++

		return true
	}

	return false
}

// canonical reports whether no permutation maps code to a smaller code.
func (it *exhaustiveIterator) canonical(code uint64) bool {
	for _, m := range it.pairMaps {
		var image uint64
		for k, target := range m {
			if code&(1<<k) != 0 {
				image |= 1 << target
			}
		}
		if image < code {
			return false
		}
	}

	return true
}

// decode turns a code back into an adjacency matrix.
func (it *exhaustiveIterator) decode(code uint64) (*matrix.Adjacency, error) {
	var edges [][2]int
	for k, p := range it.pairs {
		if code&(1<<k) != 0 {
			edges = append(edges, p)
		}
	}
	a, err := matrix.NewAdjacency(it.n, edges)
	if err != nil {
		return nil, fmt.Errorf("Exhaustive: code %d: %w", code, err)
	}

	return a, nil
}

// Matrix implements Iterator.
func (it *exhaustiveIterator) Matrix() *matrix.Adjacency { return it.cur }

// Err implements Iterator.
func (it *exhaustiveIterator) Err() error { return it.err }

// Close implements Iterator.
func (it *exhaustiveIterator) Close() error { return nil }
