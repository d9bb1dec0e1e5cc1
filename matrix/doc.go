// Package matrix offers the integer matrix layer used by the graph embeddings.
//
// The matrix package provides:
//
//   - Adjacency: an immutable n×n symmetric 0/1 matrix with zero diagonal,
//     the only graph representation the embeddings consume.
//   - Dense[T]: a square row-major matrix over uint32 or uint64 used for
//     adjacency powers (walk counts).
//   - Mul / MulInto: checked integer products that return ErrOverflow instead
//     of wrapping around.
//   - Validators for raw rows (square, binary, zero diagonal, symmetric).
//
// Matrices are best for the small, dense graphs enumerated here, where O(n²)
// memory and O(n³) products are acceptable.
package matrix
