// SPDX-License-Identifier: MIT

package driver

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/graphprint/collision"
	"github.com/katalvlaran/graphprint/export"
	"github.com/katalvlaran/graphprint/matrix"
	"github.com/katalvlaran/graphprint/source"
)

// ExportGroups re-reads the stream (n, connected) from src, keeps only the
// graphs referenced by groups and writes them with export.WriteGroups.
// Indices refer to source order, so src must yield the same stream that
// produced groups.
func ExportGroups(ctx context.Context, src source.Source, n int, connected bool,
	groups []collision.Group, w io.Writer, f export.Format) error {
	wanted := make(map[int]struct{})
	for _, idx := range collision.Implicated(groups) {
		wanted[idx] = struct{}{}
	}

	it, err := src.Open(ctx, n, connected)
	if err != nil {
		return fmt.Errorf("ExportGroups(n=%d): open: %w", n, err)
	}
	defer it.Close()

	picked := make(map[int]*matrix.Adjacency, len(wanted))
	for idx := 0; len(picked) < len(wanted) && it.Next(); idx++ {
		if _, ok := wanted[idx]; ok {
			picked[idx] = it.Matrix()
		}
	}
	if err = it.Err(); err != nil {
		return fmt.Errorf("ExportGroups(n=%d): source: %w", n, err)
	}
	if err = ctx.Err(); err != nil {
		return fmt.Errorf("ExportGroups(n=%d): %w", n, err)
	}

	if err = export.WriteGroups(w, groups, export.MapLookup(picked), f); err != nil {
		return fmt.Errorf("ExportGroups(n=%d): %w", n, err)
	}

	return nil
}
