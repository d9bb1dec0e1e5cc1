// SPDX-License-Identifier: MIT
// Package embedding names the graph-embedding capability and provides a
// registry of the built-in embedders.
//
// Registered names:
//   - "walk":        walk-count embedding, per-vertex profiles, automatic width.
//   - "walk-length": walk-count embedding, per-length diagonal multisets.
//   - "wl":          color refinement (1-WL).
package embedding

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/graphprint/fingerprint"
	"github.com/katalvlaran/graphprint/matrix"
	"github.com/katalvlaran/graphprint/refine"
	"github.com/katalvlaran/graphprint/walk"
)

// Embedder maps an adjacency matrix to a Fingerprint that is invariant under
// vertex relabeling. Implementations must be safe for concurrent use.
type Embedder interface {
	Name() string
	Embed(a *matrix.Adjacency) (fingerprint.Fingerprint, error)
}

// Default embedder names, in report order.
const (
	Walk       = "walk"
	WalkLength = "walk-length"
	WL         = "wl"
)

// ErrUnknownEmbedding is returned by Lookup for an unregistered name.
var ErrUnknownEmbedding = errors.New("embedding: unknown embedding")

var registry = map[string]func() Embedder{
	Walk:       func() Embedder { return walk.New() },
	WalkLength: func() Embedder { return walk.New(walk.WithLayout(walk.ByLength)) },
	WL:         func() Embedder { return refine.New() },
}

// Lookup returns a fresh embedder registered under name.
func Lookup(name string) (Embedder, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownEmbedding)
	}

	return mk(), nil
}

// LookupAll resolves names in order.
func LookupAll(names []string) ([]Embedder, error) {
	out := make([]Embedder, 0, len(names))
	for _, name := range names {
		e, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, nil
}

// Names lists every registered name in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Defaults returns the pair compared by a standard run: walk, then wl.
func Defaults() []Embedder {
	return []Embedder{walk.New(), refine.New()}
}
