// SPDX-License-Identifier: MIT
// Package collision groups graphs whose fingerprints are equal.
//
// Detect sorts (fingerprint, index) pairs and reports every run of two or
// more equal fingerprints as a Group. Groups come out in ascending
// fingerprint order; indices inside a group ascend. Singletons are dropped.
//
// Complexity: O(m log m) for m entries.
package collision

import (
	"slices"

	"github.com/katalvlaran/graphprint/fingerprint"
)

// Entry is one fingerprinted graph. Index is the graph's position in its
// source stream.
type Entry struct {
	Fingerprint fingerprint.Fingerprint
	Index       int
}

// Group is a maximal set of at least two entries sharing a fingerprint.
type Group struct {
	Fingerprint fingerprint.Fingerprint
	Indices     []int
}

// compareEntries orders by fingerprint, then index.
func compareEntries(a, b Entry) int {
	if c := a.Fingerprint.Compare(b.Fingerprint); c != 0 {
		return c
	}

	return a.Index - b.Index
}

// Detect returns the collision groups of entries. entries is not modified.
func Detect(entries []Entry) []Group {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, compareEntries)

	var groups []Group
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && sorted[end].Fingerprint == sorted[start].Fingerprint {
			end++
		}
		if end-start >= 2 {
			g := Group{Fingerprint: sorted[start].Fingerprint, Indices: make([]int, 0, end-start)}
			for _, e := range sorted[start:end] {
				g.Indices = append(g.Indices, e.Index)
			}
			groups = append(groups, g)
		}
		start = end
	}

	return groups
}

// FromFingerprints builds entries with indices 0, 1, 2, … in slice order.
func FromFingerprints(fps []fingerprint.Fingerprint) []Entry {
	entries := make([]Entry, len(fps))
	for i, f := range fps {
		entries[i] = Entry{Fingerprint: f, Index: i}
	}

	return entries
}

// Implicated returns the sorted, de-duplicated union of all group indices.
func Implicated(groups []Group) []int {
	var out []int
	for _, g := range groups {
		out = append(out, g.Indices...)
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// Overlap intersects sorted index sets, such as the outputs of Implicated.
// With no arguments it returns nil.
func Overlap(sets ...[]int) []int {
	if len(sets) == 0 {
		return nil
	}
	out := slices.Clone(sets[0])
	for _, s := range sets[1:] {
		out = intersectSorted(out, s)
	}

	return out
}

// intersectSorted merges two ascending slices.
func intersectSorted(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// Sizes returns the size of each group, in group order.
func Sizes(groups []Group) []int {
	sizes := make([]int, len(groups))
	for i, g := range groups {
		sizes[i] = len(g.Indices)
	}

	return sizes
}
