// Package walk implements the walk-count embedding of a simple graph.
//
// For an adjacency matrix A of order n the embedder computes the powers
// A², A³, …, A^(k+1) with k = max(2,n) − 1 checked multiplications and records
// each diagonal. Entry (A^ℓ)[v][v] counts the closed walks of length ℓ at v.
//
// Two layouts turn the diagonals into a Fingerprint:
//
//   - ByVertex (default): vertex v gets the profile
//     ((A²)[v][v], (A³)[v][v], …) and the multiset of profiles is hashed.
//   - ByLength: each diagonal is hashed as a multiset on its own, in walk
//     length order, into one accumulator. This loses the pairing of counts
//     across lengths and is kept for comparison runs.
//
// Both layouts are invariant under vertex relabeling. Regular graphs of the
// same order and degree, and cospectral strongly regular graphs in general,
// are never separated.
//
// Arithmetic is checked at the chosen width. Auto picks the width from n
// alone so every graph in one run is hashed the same way; see SafeWidth.
package walk
