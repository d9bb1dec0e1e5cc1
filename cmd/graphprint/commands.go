// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphprint/catalog"
	"github.com/katalvlaran/graphprint/config"
	"github.com/katalvlaran/graphprint/driver"
	"github.com/katalvlaran/graphprint/embedding"
)

// app is the state shared by every subcommand.
type app struct {
	configPath string
	noColor    bool
	cfg        config.Config
	log        zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "graphprint",
		Short: "Compare graph fingerprints from walk counts and color refinement",
		Long: `graphprint fingerprints every graph on n vertices with each configured
embedding and reports the groups of non-isomorphic graphs that collide.`,
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (default ./"+config.DefaultFile+" when present)")
	pf.String("log-level", "", "log level: info, debug or trace")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored log output")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.load(cmd)
	}
	root.AddCommand(newRunCmd(a), newExportCmd(a), newEmbedCmd(a), newConfigCmd(a))

	return root
}

// load resolves the config file, applies flags and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			path = config.DefaultFile
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err = applyFlags(cmd, &cfg); err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	errOut := cmd.ErrOrStderr()
	a.log = newLogger(errOut, cfg.LogLevel, a.noColor || !isTerminal(errOut))
	if path != "" {
		a.log.Debug().Str("path", path).Msg("config loaded")
	}

	return nil
}

// applyFlags copies every flag the user set onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Lookup(name) != nil && fs.Changed(name) {
			err = apply()
		}
	}
	set("log-level", func() (e error) { cfg.LogLevel, e = fs.GetString("log-level"); return })
	set("min", func() (e error) { cfg.MinVertices, e = fs.GetInt("min"); return })
	set("max", func() (e error) { cfg.MaxVertices, e = fs.GetInt("max"); return })
	set("connected", func() (e error) { cfg.Connected, e = fs.GetBool("connected"); return })
	set("source", func() (e error) { cfg.Source.Kind, e = fs.GetString("source"); return })
	set("dir", func() (e error) { cfg.Source.Dir, e = fs.GetString("dir"); return })
	set("geng", func() (e error) { cfg.Source.GengPath, e = fs.GetString("geng"); return })
	set("embeddings", func() (e error) { cfg.Embeddings, e = fs.GetStringSlice("embeddings"); return })
	set("workers", func() (e error) { cfg.Workers, e = fs.GetInt("workers"); return })
	set("batch", func() (e error) { cfg.BatchSize, e = fs.GetInt("batch"); return })
	set("cache", func() (e error) { cfg.CacheDir, e = fs.GetString("cache"); return })
	set("format", func() (e error) { cfg.ExportFormat, e = fs.GetString("format"); return })
	set("n", func() error {
		n, e := fs.GetInt("n")
		cfg.MinVertices, cfg.MaxVertices = n, n
		return e
	})

	return err
}

// addStreamFlags registers the flags shared by run and export.
func addStreamFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Bool("connected", false, "only connected graphs")
	fs.String("source", "", "graph source: "+strings.Join([]string{config.SourceExhaustive, config.SourceGeng, config.SourceGraph6Dir}, ", "))
	fs.String("dir", "", "directory holding graphs{n}.txt / cgraphs{n}.txt")
	fs.String("geng", "", "path to the nauty geng binary")
	fs.Int("workers", 0, "parallel batches (0 = GOMAXPROCS)")
	fs.Int("batch", 0, "graphs per batch")
	fs.String("cache", "", "fingerprint catalog directory")
}

// driverOptions turns the config into driver options. The returned closer
// releases the catalog, if any.
func (a *app) driverOptions() ([]driver.Option, func(), error) {
	opts := []driver.Option{
		driver.WithVertexRange(a.cfg.MinVertices, a.cfg.MaxVertices),
		driver.WithConnected(a.cfg.Connected),
		driver.WithBatchSize(a.cfg.BatchSize),
		driver.WithLogger(a.log),
	}
	if a.cfg.Workers > 0 {
		opts = append(opts, driver.WithWorkers(a.cfg.Workers))
	}
	if a.cfg.CacheDir == "" {
		return opts, func() {}, nil
	}

	catCfg := catalog.DefaultConfig(a.cfg.CacheDir)
	catCfg.Logger = a.log
	cat, err := catalog.Open(catCfg)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if cerr := cat.Close(); cerr != nil {
			a.log.Warn().Err(cerr).Msg("catalog close")
		}
	}

	return append(opts, driver.WithCatalog(cat)), closer, nil
}

func (a *app) embedders() ([]embedding.Embedder, error) {
	return embedding.LookupAll(a.cfg.Embeddings)
}

// errUsage marks argument errors detected after flag parsing.
var errUsage = errors.New("usage")

func usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}
