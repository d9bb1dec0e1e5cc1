// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Graph6Dir reads pre-generated geng output from Dir:
// graphs{n}.txt for all graphs, cgraphs{n}.txt for connected ones.
type Graph6Dir struct {
	Dir string
}

// FileName returns the file name used for (n, connected).
func FileName(n int, connected bool) string {
	if connected {
		return fmt.Sprintf("cgraphs%d.txt", n)
	}

	return fmt.Sprintf("graphs%d.txt", n)
}

// Open implements Source. A missing file is reported with the os error
// (errors.Is(err, fs.ErrNotExist)).
func (d Graph6Dir) Open(_ context.Context, n int, connected bool) (Iterator, error) {
	if err := validateOrder("Graph6Dir.Open", n); err != nil {
		return nil, err
	}
	path := filepath.Join(d.Dir, FileName(n, connected))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Graph6Dir.Open: %w", err)
	}

	return newLineIterator(f, n, func(bool) error { return f.Close() }), nil
}
