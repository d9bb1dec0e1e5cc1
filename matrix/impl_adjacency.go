// SPDX-License-Identifier: MIT

// Package matrix - Adjacency: immutable simple-graph adjacency matrix.
//
// Purpose:
//   - Row-major 0/1 storage with the explicit index formula i*n + j.
//   - Immutable once built: every constructor validates and copies its input,
//     and no method mutates the receiver.
//   - Precomputed neighbor lists (ascending) for O(deg) neighborhood scans.
//
// Complexity quicksheet:
//   - Build: O(n²); Has: O(1); Neighbors: O(deg) (copy); Permute: O(n²).

package matrix

import (
	"fmt"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNewAdjacency = "NewAdjacency"
	ctxFromRows     = "FromRows"
	ctxParseRows    = "ParseRows"
	ctxPermute      = "Permute"
	ctxAdjAt        = "At"
)

// Adjacency is an n×n symmetric 0/1 matrix with zero diagonal.
//   - n is the vertex count (n ≥ 1).
//   - data is a flat buffer of length n*n in row-major order.
//   - nbrs[i] lists the neighbors of i in ascending order.
type Adjacency struct {
	n    int
	data []uint8
	nbrs [][]int
}

// newAdjacencyZero allocates an edgeless n-vertex adjacency (n validated by caller).
func newAdjacencyZero(n int) *Adjacency {
	return &Adjacency{n: n, data: make([]uint8, n*n)}
}

// finalize derives neighbor lists from data; called exactly once per constructor.
func (a *Adjacency) finalize() *Adjacency {
	a.nbrs = make([][]int, a.n)
	var i, j, base int
	for i = 0; i < a.n; i++ {
		base = i * a.n
		for j = 0; j < a.n; j++ {
			if a.data[base+j] == 1 {
				a.nbrs[i] = append(a.nbrs[i], j)
			}
		}
	}

	return a
}

// NewAdjacency builds an n-vertex simple graph from an undirected edge list.
//
// Implementation:
//   - Stage 1: validate n > 0.
//   - Stage 2: validate every endpoint in [0,n) and reject self-loops.
//   - Stage 3: write both (u,v) and (v,u); duplicate edges are idempotent.
//
// Errors:
//   - ErrBadShape (n ≤ 0), ErrOutOfRange (endpoint), ErrNonZeroDiagonal (u == v).
//
// Complexity:
//   - Time O(n² + |edges|), Space O(n²).
func NewAdjacency(n int, edges [][2]int) (*Adjacency, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(n=%d): %w", ctxNewAdjacency, n, ErrBadShape)
	}
	a := newAdjacencyZero(n)
	for k, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%s: edge %d (%d,%d): %w", ctxNewAdjacency, k, u, v, ErrOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("%s: edge %d (%d,%d): %w", ctxNewAdjacency, k, u, v, ErrNonZeroDiagonal)
		}
		a.data[u*n+v] = 1
		a.data[v*n+u] = 1
	}

	return a.finalize(), nil
}

// FromRows builds an Adjacency from a square 0/1 table.
// The table is validated (see ValidateAdjacencyRows) and copied.
//
// Errors:
//   - ErrBadShape, ErrNonSquare, ErrNonBinary, ErrNonZeroDiagonal, ErrAsymmetry.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromRows(rows [][]uint8) (*Adjacency, error) {
	if err := ValidateAdjacencyRows(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	n := len(rows)
	a := newAdjacencyZero(n)
	for i := range rows {
		copy(a.data[i*n:(i+1)*n], rows[i])
	}

	return a.finalize(), nil
}

// ParseRows builds an Adjacency from text with one row per line, each row a
// string of '0' and '1' runes. Surrounding whitespace and blank lines are
// ignored, so multi-line string literals can be indented freely.
//
// Errors:
//   - ErrParse for any other rune; FromRows errors otherwise.
func ParseRows(text string) (*Adjacency, error) {
	var rows [][]uint8
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]uint8, 0, len(line))
		for col, r := range line {
			switch r {
			case '0':
				row = append(row, 0)
			case '1':
				row = append(row, 1)
			default:
				return nil, fmt.Errorf("%s: line %d col %d %q: %w", ctxParseRows, lineNo+1, col+1, r, ErrParse)
			}
		}
		rows = append(rows, row)
	}

	a, err := FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxParseRows, err)
	}

	return a, nil
}

// N returns the vertex count.
func (a *Adjacency) N() int { return a.n }

// Has reports whether i and j are adjacent. Out-of-range indices report false.
// Complexity: O(1).
func (a *Adjacency) Has(i, j int) bool {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return false
	}

	return a.data[i*a.n+j] == 1
}

// At returns the entry at (i, j) or ErrOutOfRange.
// Complexity: O(1).
func (a *Adjacency) At(i, j int) (uint8, error) {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return 0, fmt.Errorf("Adjacency.%s(%d,%d): %w", ctxAdjAt, i, j, ErrOutOfRange)
	}

	return a.data[i*a.n+j], nil
}

// Neighbors returns a copy of the ascending neighbor list of v.
// Out-of-range v returns nil.
func (a *Adjacency) Neighbors(v int) []int {
	if v < 0 || v >= a.n {
		return nil
	}

	return slices.Clone(a.nbrs[v])
}

// AppendNeighbors appends the ascending neighbors of v to dst and returns the
// extended slice. Hot loops reuse dst to avoid one allocation per call.
func (a *Adjacency) AppendNeighbors(dst []int, v int) []int {
	if v < 0 || v >= a.n {
		return dst
	}

	return append(dst, a.nbrs[v]...)
}

// Degree returns the number of neighbors of v (0 when out of range).
func (a *Adjacency) Degree(v int) int {
	if v < 0 || v >= a.n {
		return 0
	}

	return len(a.nbrs[v])
}

// MaxDegree returns Δ, the largest vertex degree.
func (a *Adjacency) MaxDegree() int {
	maxDeg := 0
	for v := 0; v < a.n; v++ {
		if d := len(a.nbrs[v]); d > maxDeg {
			maxDeg = d
		}
	}

	return maxDeg
}

// Edges returns every edge {i,j} with i<j in row-major order.
// Complexity: O(n²).
func (a *Adjacency) Edges() [][2]int {
	var edges [][2]int
	for i := 0; i < a.n; i++ {
		for _, j := range a.nbrs[i] {
			if j > i {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return edges
}

// EdgeCount returns the number of undirected edges.
func (a *Adjacency) EdgeCount() int {
	sum := 0
	for v := 0; v < a.n; v++ {
		sum += len(a.nbrs[v])
	}

	return sum / 2
}

// PackedUpper returns the upper triangle (i<j, row-major) packed one bit per
// pair, most significant bit first, padded with zero bits to a whole byte.
// Together with N it identifies the labeled graph exactly.
// Complexity: O(n²).
func (a *Adjacency) PackedUpper() []byte {
	pairs := a.n * (a.n - 1) / 2
	out := make([]byte, (pairs+7)/8)
	k := 0
	for i := 0; i < a.n; i++ {
		for j := i + 1; j < a.n; j++ {
			if a.data[i*a.n+j] == 1 {
				out[k/8] |= 0x80 >> (k % 8)
			}
			k++
		}
	}

	return out
}

// Rows returns a fresh copy of the matrix as a row table.
func (a *Adjacency) Rows() [][]uint8 {
	rows := make([][]uint8, a.n)
	for i := range rows {
		rows[i] = append([]uint8(nil), a.data[i*a.n:(i+1)*a.n]...)
	}

	return rows
}

// Connected reports whether the graph is connected (BFS from vertex 0).
// A single vertex is connected.
// Complexity: O(n + m).
func (a *Adjacency) Connected() bool {
	visited := make([]bool, a.n)
	queue := make([]int, 0, a.n)
	queue = append(queue, 0)
	visited[0] = true
	seen := 1
	for head := 0; head < len(queue); head++ {
		for _, w := range a.nbrs[queue[head]] {
			if !visited[w] {
				visited[w] = true
				seen++
				queue = append(queue, w)
			}
		}
	}

	return seen == a.n
}

// Permute returns π(A): vertex i of the receiver becomes vertex perm[i] of
// the result, so B[perm[i]][perm[j]] = A[i][j].
//
// Errors:
//   - ErrBadPermutation when perm is not a bijection on [0,n).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (a *Adjacency) Permute(perm []int) (*Adjacency, error) {
	if err := ValidatePermutation(perm, a.n); err != nil {
		return nil, fmt.Errorf("Adjacency.%s: %w", ctxPermute, err)
	}
	b := newAdjacencyZero(a.n)
	for i := 0; i < a.n; i++ {
		for _, j := range a.nbrs[i] {
			b.data[perm[i]*a.n+perm[j]] = 1
		}
	}

	return b.finalize(), nil
}

// Equal reports whether both matrices have the same order and entries.
// It compares labeled graphs, not isomorphism classes.
func (a *Adjacency) Equal(b *Adjacency) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// String renders one line of '0'/'1' runes per row (the ParseRows format).
func (a *Adjacency) String() string {
	var b strings.Builder
	b.Grow(a.n * (a.n + 1))
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			b.WriteByte('0' + a.data[i*a.n+j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
