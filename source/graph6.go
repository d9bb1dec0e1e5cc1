// SPDX-License-Identifier: MIT
// Package: source
//
// Purpose:
//   - Decode graph6 records (gonum graph/encoding/graph6) into Adjacency.
//   - A line-oriented iterator shared by Graph6Dir and Geng.

package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/graph/encoding/graph6"

	"github.com/katalvlaran/graphprint/matrix"
)

// graph6Header is the optional header nauty writes with -h.
const graph6Header = ">>graph6<<"

// DecodeGraph6 decodes one graph6 record. When n > 0 the record must have
// exactly n vertices.
//
// Errors: ErrMalformed.
func DecodeGraph6(record string, n int) (*matrix.Adjacency, error) {
	record = strings.TrimPrefix(strings.TrimSpace(record), graph6Header)
	g := graph6.Graph(record)
	if record == "" || !graph6.IsValid(g) {
		return nil, fmt.Errorf("DecodeGraph6(%q): invalid record: %w", record, ErrMalformed)
	}
	order := g.Nodes().Len()
	if n > 0 && order != n {
		return nil, fmt.Errorf("DecodeGraph6(%q): %d vertices, want %d: %w", record, order, n, ErrMalformed)
	}
	if order == 0 {
		return nil, fmt.Errorf("DecodeGraph6(%q): empty graph: %w", record, ErrMalformed)
	}

	var edges [][2]int
	for i := 0; i < order; i++ {
		for j := i + 1; j < order; j++ {
			if g.HasEdgeBetween(int64(i), int64(j)) {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	a, err := matrix.NewAdjacency(order, edges)
	if err != nil {
		return nil, fmt.Errorf("DecodeGraph6(%q): %v: %w", record, err, ErrMalformed)
	}

	return a, nil
}

// lineIterator decodes one graph6 record per non-blank line of r.
type lineIterator struct {
	scanner *bufio.Scanner
	n       int
	line    int
	cur     *matrix.Adjacency
	err     error
	// finish runs once when the input is exhausted or Close is called;
	// it reports errors of the underlying producer.
	finish   func(clean bool) error
	finished bool
}

// newLineIterator wraps r; finish may be nil.
func newLineIterator(r io.Reader, n int, finish func(clean bool) error) *lineIterator {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	return &lineIterator{scanner: sc, n: n, finish: finish}
}

// Next implements Iterator.
func (it *lineIterator) Next() bool {
	if it.err != nil || it.finished {
		return false
	}
	for it.scanner.Scan() {
		it.line++
		text := strings.TrimSpace(it.scanner.Text())
		if text == "" || text == graph6Header {
			continue
		}
		a, err := DecodeGraph6(text, it.n)
		if err != nil {
			it.err = fmt.Errorf("line %d: %w", it.line, err)
			it.cur = nil
			_ = it.done(false)

			return false
		}
		it.cur = a

		return true
	}
	it.cur = nil
	if err := it.scanner.Err(); err != nil {
		it.err = fmt.Errorf("line %d: %w", it.line+1, err)
		_ = it.done(false)

		return false
	}
	if err := it.done(true); err != nil {
		it.err = err
	}

	return false
}

// Matrix implements Iterator.
func (it *lineIterator) Matrix() *matrix.Adjacency { return it.cur }

// Err implements Iterator.
func (it *lineIterator) Err() error { return it.err }

// Close implements Iterator.
func (it *lineIterator) Close() error { return it.done(false) }

// done runs finish at most once.
func (it *lineIterator) done(clean bool) error {
	if it.finished {
		return nil
	}
	it.finished = true
	if it.finish == nil {
		return nil
	}

	return it.finish(clean)
}
