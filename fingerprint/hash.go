// SPDX-License-Identifier: MIT
// Package: fingerprint
//
// Purpose:
//   - CanonicalMultisetHash: sort a copy of fixed-width records by a total
//     order over their values, then stream them into a blake3-256 accumulator.
//
// Determinism:
//   - Inputs are never mutated; sorting always happens on a copy.
//   - Words are written as fixed-width little-endian (4 or 8 bytes).
//   - Fingerprints sort bytewise, tuples lexicographically by numeric value.
//
// Complexity:
//   - Time O(m log m · w) for m records of w words, Space O(m · w).

package fingerprint

import (
	"encoding/binary"
	"hash"
	"math"
	"slices"

	"lukechampine.com/blake3"
)

// Word is the set of fixed-width integers a record may be built from.
type Word interface {
	~uint32 | ~uint64
}

// NewHasher returns a fresh 256-bit blake3 accumulator.
func NewHasher() hash.Hash {
	return blake3.New(Size, nil)
}

// Sum finalizes h into a Fingerprint. h must produce Size bytes.
func Sum(h hash.Hash) Fingerprint {
	var f Fingerprint
	copy(f[:], h.Sum(nil))

	return f
}

// appendWord serializes v as little-endian using the natural width of T.
func appendWord[T Word](buf []byte, v T) []byte {
	if uint64(^T(0)) == math.MaxUint32 {
		return binary.LittleEndian.AppendUint32(buf, uint32(v))
	}

	return binary.LittleEndian.AppendUint64(buf, uint64(v))
}

// FeedFingerprints writes fps, sorted bytewise, into h.
func FeedFingerprints(h hash.Hash, fps []Fingerprint) {
	sorted := slices.Clone(fps)
	slices.SortFunc(sorted, Fingerprint.Compare)
	for i := range sorted {
		_, _ = h.Write(sorted[i][:])
	}
}

// FeedScalars writes the numerically sorted values into h.
func FeedScalars[T Word](h hash.Hash, values []T) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	buf := make([]byte, 0, 8*len(sorted))
	for _, v := range sorted {
		buf = appendWord(buf, v)
	}
	_, _ = h.Write(buf)
}

// FeedTuples writes tuples sorted lexicographically by numeric value into h.
// Each tuple is written word by word; callers keep every tuple the same length.
func FeedTuples[T Word](h hash.Hash, tuples [][]T) {
	order := make([]int, len(tuples))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(x, y int) int {
		return slices.Compare(tuples[x], tuples[y])
	})

	var buf []byte
	for _, idx := range order {
		buf = buf[:0]
		for _, v := range tuples[idx] {
			buf = appendWord(buf, v)
		}
		_, _ = h.Write(buf)
	}
}

// SumFingerprints is CanonicalMultisetHash over fingerprint records.
func SumFingerprints(fps []Fingerprint) Fingerprint {
	h := NewHasher()
	FeedFingerprints(h, fps)

	return Sum(h)
}

// SumScalars is CanonicalMultisetHash over single-word records.
func SumScalars[T Word](values []T) Fingerprint {
	h := NewHasher()
	FeedScalars(h, values)

	return Sum(h)
}

// SumTuples is CanonicalMultisetHash over tuple records.
func SumTuples[T Word](tuples [][]T) Fingerprint {
	h := NewHasher()
	FeedTuples(h, tuples)

	return Sum(h)
}

// Empty is the hash of no input: the fingerprint of an empty multiset.
var Empty = Fingerprint(blake3.Sum256(nil))
