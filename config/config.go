// SPDX-License-Identifier: MIT
// Package config loads the graphprint run configuration.
//
// Priority: environment > file > defaults. Command-line flags are applied on
// top by the CLI. The file is YAML:
//
//	min_vertices: 1
//	max_vertices: 10
//	connected: false
//	source:
//	  kind: graph6dir        # exhaustive | geng | graph6dir
//	  dir: ./graphs
//	embeddings: [walk, wl]
//	workers: 0               # 0 = GOMAXPROCS
//	batch_size: 256
//	cache_dir: ""            # empty disables the fingerprint catalog
//	log_level: info          # info | debug | trace
//	export_format: mathematica
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphprint/embedding"
	"github.com/katalvlaran/graphprint/export"
	"github.com/katalvlaran/graphprint/source"
)

// DefaultFile is the file name looked up when no path is given.
const DefaultFile = "graphprint.yaml"

// Source kinds.
const (
	SourceExhaustive = "exhaustive"
	SourceGeng       = "geng"
	SourceGraph6Dir  = "graph6dir"
)

// Log levels.
const (
	LevelInfo  = "info"
	LevelDebug = "debug"
	LevelTrace = "trace"
)

// Environment overrides.
const (
	EnvLogLevel = "GRAPHPRINT_LOG_LEVEL"
	EnvWorkers  = "GRAPHPRINT_WORKERS"
	EnvCacheDir = "GRAPHPRINT_CACHE_DIR"
	EnvGengPath = "GRAPHPRINT_GENG"
)

var (
	// ErrInvalid is wrapped by every Validate failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrParse indicates a file that is not valid YAML for Config.
	ErrParse = errors.New("config: cannot parse file")
)

// SourceConfig selects where graphs come from.
type SourceConfig struct {
	Kind     string `yaml:"kind" validate:"oneof=exhaustive geng graph6dir"`
	Dir      string `yaml:"dir,omitempty"`
	GengPath string `yaml:"geng_path,omitempty"`
}

// Config is the complete run configuration.
type Config struct {
	MinVertices  int          `yaml:"min_vertices" validate:"gte=1"`
	MaxVertices  int          `yaml:"max_vertices" validate:"gtefield=MinVertices"`
	Connected    bool         `yaml:"connected"`
	Source       SourceConfig `yaml:"source"`
	Embeddings   []string     `yaml:"embeddings" validate:"min=1,unique,dive,required"`
	Workers      int          `yaml:"workers" validate:"gte=0"`
	BatchSize    int          `yaml:"batch_size" validate:"gte=1"`
	CacheDir     string       `yaml:"cache_dir,omitempty"`
	LogLevel     string       `yaml:"log_level" validate:"oneof=info debug trace"`
	ExportFormat string       `yaml:"export_format" validate:"required"`
}

// Default returns the configuration of a plain run: every graph of 1..10
// vertices read from graph6 files in the working directory, compared under
// walk and wl.
func Default() Config {
	return Config{
		MinVertices:  1,
		MaxVertices:  10,
		Source:       SourceConfig{Kind: SourceGraph6Dir, Dir: ".", GengPath: source.DefaultGengPath},
		Embeddings:   []string{embedding.Walk, embedding.WL},
		BatchSize:    256,
		LogLevel:     LevelInfo,
		ExportFormat: export.Mathematica.String(),
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("Load(%s): %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("Load(%s): %w: %v", path, ErrParse, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, fmt.Errorf("Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("Load: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		c.CacheDir = v
	}
	if v := os.Getenv(EnvGengPath); v != "" {
		c.Source.GengPath = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, ErrInvalid)
		}
		c.Workers = k
	}

	return nil
}

// validate checks the struct tags; rules that need other packages live in Validate.
var validate = validator.New(validator.WithRequiredStructEnabled())

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks ranges, names and source requirements.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return invalidf("%v", err)
	}
	switch c.Source.Kind {
	case SourceExhaustive:
		if c.MaxVertices > source.MaxExhaustiveVertices {
			return invalidf("exhaustive source supports at most %d vertices, got max_vertices %d",
				source.MaxExhaustiveVertices, c.MaxVertices)
		}
	case SourceGeng:
		if c.Source.GengPath == "" {
			return invalidf("source.geng_path is empty")
		}
	case SourceGraph6Dir:
		if c.Source.Dir == "" {
			return invalidf("source.dir is empty")
		}
	}
	if _, err := embedding.LookupAll(c.Embeddings); err != nil {
		return invalidf("embeddings: %v", err)
	}
	if _, err := export.ParseFormat(c.ExportFormat); err != nil {
		return invalidf("export_format: %v", err)
	}

	return nil
}

// NewSource builds the configured graph source.
func (c Config) NewSource() (source.Source, error) {
	switch c.Source.Kind {
	case SourceExhaustive:
		return source.Exhaustive{}, nil
	case SourceGeng:
		return source.Geng{Path: c.Source.GengPath}, nil
	case SourceGraph6Dir:
		return source.Graph6Dir{Dir: c.Source.Dir}, nil
	default:
		return nil, invalidf("unknown source.kind %q", c.Source.Kind)
	}
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}

	return out, nil
}
