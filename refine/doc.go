// Package refine implements color refinement (1-dimensional Weisfeiler–Leman)
// and the fingerprint derived from its stable coloring.
//
// Every vertex starts with the uniform color fingerprint.Zero. In each round
// the new color of v is the blake3 hash of its current color followed by the
// sorted colors of its neighbors. Refinement stops when a round no longer
// increases the number of distinct colors, and the previous coloring is kept.
//
// The first round is always adopted, so the reported coloring separates at
// least by degree; refinement also stops as soon as every vertex has its own
// color. The graph fingerprint is the multiset hash of the final colors.
//
// Color refinement cannot separate regular graphs of equal order and degree
// (for example C6 and two disjoint triangles).
package refine
