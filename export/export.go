// SPDX-License-Identifier: MIT
// Package export renders graphs selected by collision detection so they can
// be inspected in external tools.
//
// Formats:
//   - Mathematica: Graph[{ 0\[UndirectedEdge]1,… }, VertexLabels -> "Name"]
//     with edges i<j in row-major order. Isolated vertices are not listed.
//   - Graph6: the nauty graph6 string (gonum graph/encoding/graph6).
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/graphprint/collision"
	"github.com/katalvlaran/graphprint/matrix"
)

// Format selects the per-graph rendering.
type Format int

const (
	Mathematica Format = iota
	Graph6
)

// GroupSeparator precedes every group in WriteGroups output.
const GroupSeparator = "-------------------"

// edgeSeparator is Mathematica's undirected edge operator.
const edgeSeparator = `\[UndirectedEdge]`

var (
	// ErrUnknownFormat is returned by ParseFormat.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrMissingGraph is returned when a group references an index the
	// lookup cannot resolve.
	ErrMissingGraph = errors.New("export: graph not found")
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case Mathematica:
		return "mathematica"
	case Graph6:
		return "graph6"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "mathematica" or "graph6" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mathematica", "m":
		return Mathematica, nil
	case "graph6", "g6":
		return Graph6, nil
	default:
		return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// MathematicaString renders a as a Mathematica Graph expression.
func MathematicaString(a *matrix.Adjacency) string {
	edges := a.Edges()
	parts := make([]string, len(edges))
	for k, e := range edges {
		parts[k] = strconv.Itoa(e[0]) + edgeSeparator + strconv.Itoa(e[1])
	}

	return fmt.Sprintf("Graph[{ %s }, VertexLabels -> \"Name\"]", strings.Join(parts, ","))
}

// Graph6String encodes a in graph6.
func Graph6String(a *matrix.Adjacency) string {
	return string(graph6.Encode(ToGonum(a)))
}

// ToGonum converts a into a gonum simple.UndirectedGraph with node IDs 0..n-1.
func ToGonum(a *matrix.Adjacency) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for v := 0; v < a.N(); v++ {
		g.AddNode(simple.Node(int64(v)))
	}
	for _, e := range a.Edges() {
		g.SetEdge(simple.Edge{F: simple.Node(int64(e[0])), T: simple.Node(int64(e[1]))})
	}

	return g
}

// Render renders a in format f.
func Render(a *matrix.Adjacency, f Format) (string, error) {
	switch f {
	case Mathematica:
		return MathematicaString(a), nil
	case Graph6:
		return Graph6String(a), nil
	default:
		return "", fmt.Errorf("Render: %v: %w", f, ErrUnknownFormat)
	}
}

// Lookup resolves a stream index to its matrix.
type Lookup func(index int) (*matrix.Adjacency, bool)

// WriteGroups writes, for every group, GroupSeparator and then one rendered
// graph per line in the group's index order.
//
// Errors: ErrMissingGraph, ErrUnknownFormat, or the writer's error.
func WriteGroups(w io.Writer, groups []collision.Group, lookup Lookup, f Format) error {
	bw := bufio.NewWriter(w)
	for _, g := range groups {
		if _, err := fmt.Fprintln(bw, GroupSeparator); err != nil {
			return fmt.Errorf("WriteGroups: %w", err)
		}
		for _, idx := range g.Indices {
			a, ok := lookup(idx)
			if !ok {
				return fmt.Errorf("WriteGroups: index %d: %w", idx, ErrMissingGraph)
			}
			line, err := Render(a, f)
			if err != nil {
				return fmt.Errorf("WriteGroups: %w", err)
			}
			if _, err = fmt.Fprintln(bw, line); err != nil {
				return fmt.Errorf("WriteGroups: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteGroups: %w", err)
	}

	return nil
}

// MapLookup builds a Lookup over an index → matrix map.
func MapLookup(m map[int]*matrix.Adjacency) Lookup {
	return func(index int) (*matrix.Adjacency, bool) {
		a, ok := m[index]
		return a, ok
	}
}
