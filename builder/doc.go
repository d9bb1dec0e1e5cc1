// Package builder provides deterministic adjacency fixtures for tests,
// benchmarks and regression runs.
//
// The package offers:
//
//   - Build(opts, cons...): the single orchestrator. Each Constructor appends
//     its own vertex block, so several constructors compose as a disjoint
//     union in call order.
//   - Topology constructors: Empty, Path, Cycle, Star, Wheel, Complete,
//     CompleteBipartite, Grid, Rook, Shrikhande, PlatonicSolid.
//   - Stochastic constructors: RandomSparse, RandomRegular (seeded via
//     WithSeed or WithRand).
//   - RandomPermutation for relabeling tests.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order produce the same
//     matrix.
//   - Fast-fail on nonsensical option values via panics in option constructors.
//   - Runtime parameter problems are returned as wrapped sentinels
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed); callers branch with errors.Is.
package builder
