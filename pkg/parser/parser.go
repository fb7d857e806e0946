// Package parser defines the input-format capability abstraction and the
// registry that resolves a requested or auto-detected format name to a
// concrete parser.
package parser

import (
	"path/filepath"
	"strings"

	"github.com/adi-family/apigen/pkg/ir"
	openapiparser "github.com/adi-family/apigen/pkg/parser/openapi"
)

// Parser converts one input format into the shared intermediate
// representation.
type Parser interface {
	// FormatName is the registry key for this parser (e.g., "openapi")
	FormatName() string
	// SupportedExtensions lists the file extensions this parser claims,
	// without the leading dot
	SupportedExtensions() []string
	// Parse reads and extracts the source document into an IR. Options are
	// parser-specific and may be nil.
	Parse(source string, options map[string]any) (*ir.SchemaIR, error)
}

// Registry resolves format names to parsers. It is stateless aside from the
// registration map built at startup; registering a second parser under the
// same format name replaces the first (last-registered wins).
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates a registry with the built-in parsers registered.
func NewRegistry() *Registry {
	r := &Registry{parsers: make(map[string]Parser)}
	r.Register(openapiparser.New())
	return r
}

// Register adds a parser keyed by its declared format name.
func (r *Registry) Register(p Parser) {
	r.parsers[p.FormatName()] = p
}

// Get retrieves a parser by format name.
func (r *Registry) Get(format string) (Parser, bool) {
	p, ok := r.parsers[format]
	return p, ok
}

// DetectFormat inspects the path's file extension and returns the format name
// of the first registered parser claiming it. When several parsers claim the
// same extension the winner is undefined; callers needing determinism must
// pass an explicit format.
func (r *Registry) DetectFormat(path string) (string, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", false
	}
	for _, p := range r.parsers {
		for _, supported := range p.SupportedExtensions() {
			if supported == ext {
				return p.FormatName(), true
			}
		}
	}
	return "", false
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	return names
}
