// SPDX-License-Identifier: MIT
// Package: fingerprint
//
// Purpose:
//   - Fingerprint value type: a 256-bit digest with a total bytewise order.

package fingerprint

import (
	"bytes"
	"encoding/hex"
)

// Size is the byte length of a Fingerprint.
const Size = 32

// shortLen is the number of hex digits printed by Short.
const shortLen = 12

// Fingerprint is a 256-bit digest identifying a graph under one embedding.
type Fingerprint [Size]byte

// Zero is the all-zero fingerprint, used as the uniform initial color.
var Zero Fingerprint

// Compare orders fingerprints bytewise (-1, 0, +1).
func (f Fingerprint) Compare(g Fingerprint) int {
	return bytes.Compare(f[:], g[:])
}

// Less reports whether f sorts strictly before g.
func (f Fingerprint) Less(g Fingerprint) bool { return f.Compare(g) < 0 }

// IsZero reports whether f equals Zero.
func (f Fingerprint) IsZero() bool { return f == Zero }

// String returns the full lowercase hex encoding.
func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// Short returns the first 12 hex digits, for logs.
func (f Fingerprint) Short() string { return f.String()[:shortLen] }

// FromBytes copies b into a Fingerprint; ok is false when len(b) != Size.
func FromBytes(b []byte) (Fingerprint, bool) {
	var f Fingerprint
	if len(b) != Size {
		return f, false
	}
	copy(f[:], b)

	return f, true
}
