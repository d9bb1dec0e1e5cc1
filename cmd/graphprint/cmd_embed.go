// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphprint/source"
)

func newEmbedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed <graph6>...",
		Short: "Print the fingerprints of individual graph6 records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			embedders, err := a.embedders()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, record := range args {
				g, err := source.DecodeGraph6(record, 0)
				if err != nil {
					return err
				}
				for _, emb := range embedders {
					f, err := emb.Embed(g)
					if err != nil {
						return fmt.Errorf("%s: %s: %w", record, emb.Name(), err)
					}
					fmt.Fprintf(out, "%s\t%s\t%s\n", record, emb.Name(), f)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSlice("embeddings", nil, "embeddings to apply (walk, walk-length, wl)")

	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
