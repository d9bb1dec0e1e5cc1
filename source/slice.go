// SPDX-License-Identifier: MIT

package source

import (
	"context"

	"github.com/katalvlaran/graphprint/matrix"
)

// Slice serves fixed in-memory matrices. Open yields, in slice order, the
// matrices of order n (connected ones only when requested). No isomorphism
// reduction is applied.
type Slice []*matrix.Adjacency

// Open implements Source.
func (s Slice) Open(_ context.Context, n int, connected bool) (Iterator, error) {
	if err := validateOrder("Slice.Open", n); err != nil {
		return nil, err
	}
	var picked []*matrix.Adjacency
	for _, a := range s {
		if a == nil || a.N() != n {
			continue
		}
		if connected && !a.Connected() {
			continue
		}
		picked = append(picked, a)
	}

	return &sliceIterator{items: picked, pos: -1}, nil
}

type sliceIterator struct {
	items []*matrix.Adjacency
	pos   int
}

func (it *sliceIterator) Next() bool {
	if it.pos+1 >= len(it.items) {
		it.pos = len(it.items)
		return false
	}
	it.pos++

	return true
}

func (it *sliceIterator) Matrix() *matrix.Adjacency {
	if it.pos < 0 || it.pos >= len(it.items) {
		return nil
	}

	return it.items[it.pos]
}

func (it *sliceIterator) Err() error   { return nil }
func (it *sliceIterator) Close() error { return nil }
