// Package cli implements the commands exposed by the apigen binary.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/adi-family/apigen/pkg/config"
	"github.com/adi-family/apigen/pkg/generator"
)

type RunGenerateParams struct {
	ConfigPath string
	Source     string
	Output     string
	Verbose    bool
}

// RunGenerate loads the configuration, overlays CLI flags and executes
// the full pipeline.
func RunGenerate(p RunGenerateParams) error {
	cfg, err := config.Load(p.ConfigPath)
	if err != nil {
		return err
	}
	config.MergeFlags(cfg, p.Source, p.Output)
	return generator.NewService(newLogger(p.Verbose)).Run(cfg)
}

// RunValidate parses the input and reports success without writing
// anything.
func RunValidate(source, format string, out io.Writer) error {
	schema, err := generator.NewService(nil).ParseInput(&config.Input{Source: source, Format: format})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s: %d schemas, %d operations\n",
		schema.Metadata.Title, schema.Metadata.Version,
		len(schema.Schemas), len(schema.Operations))
	return nil
}

// RunInspect parses the input and dumps the intermediate representation
// as indented JSON.
func RunInspect(source, format string, out io.Writer) error {
	schema, err := generator.NewService(nil).ParseInput(&config.Input{Source: source, Format: format})
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(schema)
}

// RunGenerators lists the registered generator names.
func RunGenerators(out io.Writer) {
	for _, name := range generator.NewRegistry().Names() {
		fmt.Fprintln(out, name)
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
