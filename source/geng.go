// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// DefaultGengPath is the binary looked up on PATH when Geng.Path is empty.
const DefaultGengPath = "geng"

// Geng runs nauty's geng and decodes its graph6 output on the fly.
// The subprocess is bound to the Open context.
type Geng struct {
	// Path to the geng binary; DefaultGengPath when empty.
	Path string
}

// Args returns the geng arguments for (n, connected): -q [-c] n.
func (g Geng) Args(n int, connected bool) []string {
	args := []string{"-q"}
	if connected {
		args = append(args, "-c")
	}

	return append(args, strconv.Itoa(n))
}

// Open implements Source. A non-zero exit status surfaces from Err after the
// last record, or from Close.
func (g Geng) Open(ctx context.Context, n int, connected bool) (Iterator, error) {
	if err := validateOrder("Geng.Open", n); err != nil {
		return nil, err
	}
	path := g.Path
	if path == "" {
		path = DefaultGengPath
	}
	cmd := exec.CommandContext(ctx, path, g.Args(n, connected)...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("Geng.Open: %w", err)
	}
	if err = cmd.Start(); err != nil {
		return nil, fmt.Errorf("Geng.Open: start %s: %w", path, err)
	}

	finish := func(clean bool) error {
		if !clean && cmd.Process != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()

			return nil
		}
		if werr := cmd.Wait(); werr != nil {
			return fmt.Errorf("Geng: %s: %w", path, werr)
		}

		return nil
	}

	return newLineIterator(stdout, n, finish), nil
}
