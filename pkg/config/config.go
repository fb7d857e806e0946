// Package config loads and merges the generation configuration consumed by
// the pipeline: one input source plus any number of generation targets.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is consulted when no explicit config path is given.
const DefaultPath = ".config/apigen.yaml"

// Config is the complete configuration for one pipeline run.
type Config struct {
	Version string `yaml:"version"`

	Input *Input `yaml:"input"`

	// Output is the directory generated files are written to
	Output string `yaml:"output"`

	Generations []Generation `yaml:"generations"`

	Hooks Hooks `yaml:"hooks"`
}

// Input describes the source document to parse.
type Input struct {
	// Format selects a parser explicitly; when empty the format is
	// detected from the source file extension
	Format string `yaml:"format"`

	Source string `yaml:"source"`

	// Options are parser-specific and passed through uninterpreted
	Options map[string]any `yaml:"options"`
}

// Generation configures a single generation target.
type Generation struct {
	// Generator is the registry key of the generator to run
	Generator string `yaml:"generator"`

	OutputFile string `yaml:"outputFile"`

	// Enabled defaults to true when omitted
	Enabled *bool `yaml:"enabled"`

	// Template overrides the generator's embedded default template
	Template string `yaml:"template"`

	// Plugin is an optional plugin location, interpreted by the generator
	Plugin string `yaml:"plugin"`

	// Options are generator-specific and passed through uninterpreted
	Options map[string]any `yaml:"options"`
}

// IsEnabled reports whether this generation target should run.
func (g Generation) IsEnabled() bool {
	return g.Enabled == nil || *g.Enabled
}

// BoolOption returns the named option as a bool, or def when absent or not
// a bool.
func (g Generation) BoolOption(key string, def bool) bool {
	if v, ok := g.Options[key].(bool); ok {
		return v
	}
	return def
}

// StringOption returns the named option as a string, or def when absent or
// not a string.
func (g Generation) StringOption(key, def string) string {
	if v, ok := g.Options[key].(string); ok && v != "" {
		return v
	}
	return def
}

// Hooks are shell commands run around generation.
type Hooks struct {
	BeforeGenerate []string `yaml:"beforeGenerate"`
	AfterGenerate  []string `yaml:"afterGenerate"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output:  "generated",
	}
}

// Load reads configuration from path. When path is empty the default location
// is tried; a missing default falls back to Default(), while a missing
// explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "read config file %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config file %s", path)
	}
	if cfg.Output == "" {
		cfg.Output = "generated"
	}
	return &cfg, nil
}

// MergeFlags overlays CLI arguments onto cfg; flags take precedence.
func MergeFlags(cfg *Config, source, output string) *Config {
	if source != "" {
		if cfg.Input == nil {
			cfg.Input = &Input{Source: source}
		} else {
			cfg.Input.Source = source
		}
	}
	if output != "" {
		cfg.Output = output
	}
	return cfg
}
