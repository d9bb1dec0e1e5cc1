// SPDX-License-Identifier: MIT

package refine

import (
	"github.com/katalvlaran/graphprint/fingerprint"
	"github.com/katalvlaran/graphprint/matrix"
)

// Embedder produces color-refinement fingerprints.
type Embedder struct{}

// New returns a color-refinement Embedder.
func New() *Embedder { return &Embedder{} }

// Name returns "wl".
func (*Embedder) Name() string { return "wl" }

// Embed hashes the multiset of stable colors of a. The only error is ErrNilGraph.
func (*Embedder) Embed(a *matrix.Adjacency) (fingerprint.Fingerprint, error) {
	if a == nil {
		return fingerprint.Fingerprint{}, ErrNilGraph
	}

	return fingerprint.SumFingerprints(Refine(a).Colors), nil
}
