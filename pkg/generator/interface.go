// Package generator defines the output-side capability abstraction: a
// registry of code generators that consume the shared intermediate
// representation and produce named content blobs, plus the service that
// orchestrates a whole pipeline run.
package generator

import (
	"sort"

	"github.com/adi-family/apigen/pkg/config"
	"github.com/adi-family/apigen/pkg/generator/adihttp"
	"github.com/adi-family/apigen/pkg/generator/golang"
	"github.com/adi-family/apigen/pkg/generator/python"
	"github.com/adi-family/apigen/pkg/generator/typescript"
	"github.com/adi-family/apigen/pkg/ir"
)

// Generator converts the shared IR into target-language code. The IR is
// read-only; generators must not mutate it.
type Generator interface {
	// Name is the registry key for this generator (e.g., "typescript")
	Name() string
	// FileExtension is the extension for generated output (e.g., "ts")
	FileExtension() string
	// Generate produces output from the IR and per-generation configuration
	Generate(schema *ir.SchemaIR, gen config.Generation) (*ir.GeneratedOutput, error)
}

// Registry resolves generator names to implementations. Registering a second
// generator under the same name replaces the first (last-registered wins).
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates a registry with the built-in generators registered.
func NewRegistry() *Registry {
	r := &Registry{generators: make(map[string]Generator)}
	r.Register(typescript.New())
	r.Register(adihttp.New())
	r.Register(python.New())
	r.Register(golang.New())
	return r
}

// Register adds a generator keyed by its name.
func (r *Registry) Register(g Generator) {
	r.generators[g.Name()] = g
}

// Get retrieves a generator by name.
func (r *Registry) Get(name string) (Generator, bool) {
	g, ok := r.generators[name]
	return g, ok
}

// Names returns the registered generator names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
