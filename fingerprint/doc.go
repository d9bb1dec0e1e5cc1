// Package fingerprint defines the 256-bit graph fingerprint and the canonical
// multiset hash every embedding is built on.
//
// A multiset of fixed-width records is hashed by sorting a copy of the records
// under a total order over their values and streaming the sorted sequence into
// a blake3-256 accumulator. Two multisets with the same elements therefore
// produce the same Fingerprint regardless of input order.
//
// Integers are serialized explicitly as fixed-width little-endian, so the
// result does not depend on the host's memory layout.
package fingerprint
