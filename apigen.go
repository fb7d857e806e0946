// Package apigen turns OpenAPI documents into a language-neutral schema
// IR and generates typed clients from it.
//
// The package offers a small convenience API over the pipeline; the
// pluggable pieces live in pkg/parser and pkg/generator.
//
// Quick Start:
//
//	import "github.com/adi-family/apigen"
//
//	// Parse a document into the IR
//	schema, err := apigen.ParseSpec("./openapi.yaml")
//
//	// Run every generation declared in a config file
//	err = apigen.GenerateFromConfig("./.config/apigen.yaml")
package apigen

import (
	"github.com/adi-family/apigen/pkg/config"
	"github.com/adi-family/apigen/pkg/generator"
	"github.com/adi-family/apigen/pkg/ir"
)

// ParseSpec parses a document into the intermediate representation. The
// parser is selected from the file extension.
func ParseSpec(source string) (*ir.SchemaIR, error) {
	return generator.NewService(nil).ParseInput(&config.Input{Source: source})
}

// ValidateSpec checks that a document can be parsed into the IR.
//
// Example:
//
//	if err := apigen.ValidateSpec("./openapi.yaml"); err != nil {
//		log.Fatalf("invalid spec: %v", err)
//	}
func ValidateSpec(source string) error {
	_, err := ParseSpec(source)
	return err
}

// Generate runs every enabled generation from an in-memory config.
func Generate(cfg *config.Config) error {
	return generator.NewService(nil).Run(cfg)
}

// GenerateFromConfig loads a YAML config file and runs every enabled
// generation it declares.
func GenerateFromConfig(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return generator.NewService(nil).Run(cfg)
}
