// SPDX-License-Identifier: MIT
// Package: walk
//
// Purpose:
//   - Functional options for Embedder (width and layout).
//   - Option constructors panic on values outside the declared enums; that is
//     a programming error, not a runtime condition.

package walk

import "fmt"

// Width selects the integer width of the walk-count arithmetic.
type Width int

const (
	// Auto selects Width32 or Width64 from the vertex count (see SafeWidth).
	Auto Width = iota
	// Width32 counts with uint32.
	Width32
	// Width64 counts with uint64.
	Width64
)

// String implements fmt.Stringer.
func (w Width) String() string {
	switch w {
	case Auto:
		return "auto"
	case Width32:
		return "32"
	case Width64:
		return "64"
	default:
		return fmt.Sprintf("Width(%d)", int(w))
	}
}

// Layout selects how recorded diagonals are turned into a fingerprint.
type Layout int

const (
	// ByVertex hashes the multiset of per-vertex walk profiles.
	ByVertex Layout = iota
	// ByLength hashes each diagonal as its own multiset, in length order.
	ByLength
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case ByVertex:
		return "by-vertex"
	case ByLength:
		return "by-length"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Option configures an Embedder.
type Option func(*Embedder)

// WithWidth forces the arithmetic width. Panics on an unknown Width.
func WithWidth(w Width) Option {
	if w < Auto || w > Width64 {
		panic(fmt.Sprintf("walk: WithWidth(%d): unknown width", int(w)))
	}

	return func(e *Embedder) { e.width = w }
}

// WithLayout selects the diagonal layout. Panics on an unknown Layout.
func WithLayout(l Layout) Option {
	if l < ByVertex || l > ByLength {
		panic(fmt.Sprintf("walk: WithLayout(%d): unknown layout", int(l)))
	}

	return func(e *Embedder) { e.layout = l }
}
