// Package source streams simple graphs of a given order, one adjacency matrix
// at a time, up to isomorphism.
//
// A Source opens an Iterator for (n, connected). Iterators are scanner-shaped:
//
//	it, err := src.Open(ctx, n, connected)
//	if err != nil { ... }
//	defer it.Close()
//	for it.Next() {
//		a := it.Matrix()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
//
// Adapters:
//
//   - Graph6Dir reads nauty geng output stored as graphs{n}.txt and
//     cgraphs{n}.txt, one graph6 record per line.
//   - Geng runs the geng binary and decodes its standard output.
//   - Exhaustive enumerates canonical representatives in process for small n.
//   - Slice serves fixed in-memory matrices.
//
// A malformed record is fatal for the stream; the iterator stops and Err
// reports ErrMalformed with the offending line number.
package source
