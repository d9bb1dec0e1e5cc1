// SPDX-License-Identifier: MIT

package walk

import "errors"

var (
	// ErrOverflow is returned when a closed-walk count does not fit the
	// selected width. It always also matches matrix.ErrOverflow.
	ErrOverflow = errors.New("walk: closed-walk count overflow")

	// ErrNilGraph is returned when Embed or Profiles receive a nil matrix.
	ErrNilGraph = errors.New("walk: nil adjacency")
)
