// SPDX-License-Identifier: MIT
// Package: refine
//
// Purpose:
//   - One refinement round (Step) and the full loop (Refine) with an
//     observable trace of distinct-color counts.
//
// Complexity:
//   - Step: O((n + m) log Δ) hashing work; Refine: at most n rounds.

package refine

import (
	"errors"
	"slices"

	"github.com/katalvlaran/graphprint/fingerprint"
	"github.com/katalvlaran/graphprint/matrix"
)

// ErrNilGraph is returned by Embed on a nil matrix.
var ErrNilGraph = errors.New("refine: nil adjacency")

// Result is the outcome of a refinement run.
//   - Colors: final color per vertex.
//   - NumColors: distinct colors in Colors.
//   - Rounds: refinement rounds computed, including a final rejected one.
//   - History: distinct-color count of every adopted coloring, starting with
//     the initial uniform coloring (1).
type Result struct {
	Colors    []fingerprint.Fingerprint
	NumColors int
	Rounds    int
	History   []int
}

// Step computes one refinement round from colors and returns the new colors
// with their distinct count. colors is not modified.
//
// Implementation:
//   - Stage 1: for each v, write colors[v] into a fresh accumulator.
//   - Stage 2: feed the multiset of neighbor colors (sorted bytewise).
//   - Stage 3: finalize; count distinct results.
func Step(a *matrix.Adjacency, colors []fingerprint.Fingerprint) ([]fingerprint.Fingerprint, int) {
	n := a.N()
	next := make([]fingerprint.Fingerprint, n)
	var (
		nbrs      []int
		nbrColors []fingerprint.Fingerprint
	)
	for v := 0; v < n; v++ {
		h := fingerprint.NewHasher()
		_, _ = h.Write(colors[v][:])
		nbrColors = nbrColors[:0]
		nbrs = a.AppendNeighbors(nbrs[:0], v)
		for _, w := range nbrs {
			nbrColors = append(nbrColors, colors[w])
		}
		fingerprint.FeedFingerprints(h, nbrColors)
		next[v] = fingerprint.Sum(h)
	}

	return next, countDistinct(next)
}

// Refine runs color refinement on a to its stable coloring.
//
// Implementation:
//   - Stage 1: uniform Zero coloring, count 1.
//   - Stage 2: compute a round; from the second round on, an unchanged count
//     stops the loop and the previous coloring is kept.
//   - Stage 3: adopt the round; stop early once the partition is discrete.
//
// Complexity:
//   - At most n rounds; History is non-decreasing.
func Refine(a *matrix.Adjacency) Result {
	n := a.N()
	colors := make([]fingerprint.Fingerprint, n)
	num := 1
	res := Result{History: []int{num}}

	for res.Rounds < n {
		next, count := Step(a, colors)
		res.Rounds++
		if res.Rounds > 1 && count == num {
			break
		}
		colors, num = next, count
		res.History = append(res.History, num)
		if num == n {
			break
		}
	}
	res.Colors = colors
	res.NumColors = num

	return res
}

// Partition groups vertex indices by final color. Classes are ordered by
// color (bytewise) and indices ascend within each class.
func Partition(res Result) [][]int {
	order := make([]int, len(res.Colors))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(x, y int) int {
		return res.Colors[x].Compare(res.Colors[y])
	})

	var classes [][]int
	for i, v := range order {
		if i == 0 || res.Colors[v] != res.Colors[order[i-1]] {
			classes = append(classes, nil)
		}
		classes[len(classes)-1] = append(classes[len(classes)-1], v)
	}

	return classes
}

// countDistinct returns the number of distinct fingerprints.
func countDistinct(colors []fingerprint.Fingerprint) int {
	sorted := slices.Clone(colors)
	slices.SortFunc(sorted, fingerprint.Fingerprint.Compare)

	return len(slices.Compact(sorted))
}
