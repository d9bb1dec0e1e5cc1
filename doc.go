// SPDX-License-Identifier: MIT
// Package graphprint compares two isomorphism-invariant graph fingerprints
// and finds the graphs each one cannot tell apart.
//
// The two fingerprints are:
//
//   - walk: for every vertex, the number of closed walks of length 2…n
//     through it (the diagonals of A², …, Aⁿ), hashed as an unordered
//     multiset of per-vertex profiles.
//   - wl: the stable coloring reached by color refinement (1-dimensional
//     Weisfeiler–Leman), hashed as the multiset of final colors.
//
// For each vertex count n the driver streams every graph on n vertices,
// fingerprints each one under both embeddings, groups equal fingerprints and
// reports how many graphs land in a group under each embedding and under both.
//
// Layout:
//
//	matrix/      adjacency matrices and checked integer products
//	fingerprint/ 256-bit BLAKE3 fingerprints and multiset hashing
//	walk/        closed-walk embedding
//	refine/      color refinement embedding
//	embedding/   the Embedder interface and name registry
//	collision/   grouping of equal fingerprints
//	source/      graph streams: graph6 files, nauty geng, in-process enumeration
//	builder/     graph constructors for tests and fixtures
//	catalog/     BadgerDB fingerprint cache
//	driver/      parallel per-n pipeline
//	report/      console and YAML summaries
//	export/      Mathematica and graph6 output of collision groups
//	config/      YAML configuration
//	cmd/graphprint/ command-line tool
package graphprint
