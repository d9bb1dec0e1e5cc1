// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphprint/driver"
	"github.com/katalvlaran/graphprint/report"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

func newRunCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fingerprint every graph in the vertex range and report collisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != outputText && output != outputYAML {
				return usagef("--output must be %s or %s, got %q", outputText, outputYAML, output)
			}
			return a.run(cmd, output)
		},
	}
	addStreamFlags(cmd)
	cmd.Flags().Int("min", 0, "smallest vertex count")
	cmd.Flags().Int("max", 0, "largest vertex count")
	cmd.Flags().StringSlice("embeddings", nil, "embeddings to compare (walk, walk-length, wl)")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "report format: text or yaml")

	return cmd
}

func (a *app) run(cmd *cobra.Command, output string) error {
	src, err := a.cfg.NewSource()
	if err != nil {
		return err
	}
	embedders, err := a.embedders()
	if err != nil {
		return err
	}
	opts, closeCatalog, err := a.driverOptions()
	if err != nil {
		return err
	}
	defer closeCatalog()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	if output == outputYAML {
		results, err := driver.Run(ctx, src, embedders, opts...)
		if err != nil {
			return err
		}
		return report.WriteYAML(out, results)
	}

	// Text output is streamed one vertex count at a time.
	for n := a.cfg.MinVertices; n <= a.cfg.MaxVertices; n++ {
		res, err := driver.RunN(ctx, src, n, embedders, opts...)
		if err != nil {
			return err
		}
		if err = report.WriteText(out, res); err != nil {
			return err
		}
	}

	return nil
}
