// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphprint/driver"
	"github.com/katalvlaran/graphprint/embedding"
	"github.com/katalvlaran/graphprint/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		n    int
		name string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the graphs of every collision group for one vertex count",
		Long: `export fingerprints the graphs on --n vertices with a single embedding and
writes each collision group, one graph per line, separated by a dashed line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n < 1 {
				return usagef("--n must be >= 1, got %d", n)
			}
			return a.export(cmd, n, name)
		},
	}
	addStreamFlags(cmd)
	cmd.Flags().IntVar(&n, "n", 0, "vertex count")
	cmd.Flags().StringVar(&name, "embedding", embedding.Walk, "embedding whose collisions are exported")
	cmd.Flags().String("format", "", "mathematica or graph6")

	return cmd
}

func (a *app) export(cmd *cobra.Command, n int, name string) error {
	format, err := export.ParseFormat(a.cfg.ExportFormat)
	if err != nil {
		return err
	}
	emb, err := embedding.Lookup(name)
	if err != nil {
		return err
	}
	src, err := a.cfg.NewSource()
	if err != nil {
		return err
	}
	opts, closeCatalog, err := a.driverOptions()
	if err != nil {
		return err
	}
	defer closeCatalog()

	ctx := cmd.Context()
	res, err := driver.RunN(ctx, src, n, []embedding.Embedder{emb}, opts...)
	if err != nil {
		return err
	}
	groups := res.Outcomes[0].Groups
	a.log.Info().Int("n", n).Str("embedding", name).Int("groups", len(groups)).Msg("exporting")

	return driver.ExportGroups(ctx, src, n, a.cfg.Connected, groups, cmd.OutOrStdout(), format)
}
