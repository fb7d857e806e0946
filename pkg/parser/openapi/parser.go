// Package openapi implements the OpenAPI input parser: it deserializes an
// OpenAPI 3 document (JSON or YAML) and extracts it into the shared
// intermediate representation, retaining the full source document verbatim.
//
// References are resolved by name only, never by dereferencing the target
// schema, so a dangling $ref degrades to a placeholder instead of failing
// the whole extraction.
package openapi

import (
	"os"

	"github.com/cockroachdb/errors"

	"github.com/adi-family/apigen/pkg/errs"
	"github.com/adi-family/apigen/pkg/ir"
)

// FormatName is the registry key for this parser.
const FormatName = "openapi"

// Parser parses OpenAPI 3 documents.
type Parser struct{}

// New creates an OpenAPI parser.
func New() *Parser {
	return &Parser{}
}

// FormatName returns the format identifier.
func (p *Parser) FormatName() string {
	return FormatName
}

// SupportedExtensions returns the file extensions this parser claims.
func (p *Parser) SupportedExtensions() []string {
	return []string{"yaml", "yml", "json"}
}

// Parse reads the source document and builds a SchemaIR. Options are accepted
// for interface compatibility and currently unused.
func (p *Parser) Parse(source string, options map[string]any) (*ir.SchemaIR, error) {
	if _, err := os.Stat(source); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "input file %s", source), errs.ErrNotFound)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, errors.Wrapf(err, "read input file %s", source)
	}

	doc, err := decodeDocument(source, data)
	if err != nil {
		return nil, err
	}

	return &ir.SchemaIR{
		Metadata:   extractMetadata(doc.api),
		Schemas:    extractSchemas(doc),
		Operations: extractOperations(doc.api),
		Original: ir.OriginalData{
			Format:     FormatName,
			Data:       doc.tree,
			Extensions: documentExtensions(doc.api),
		},
	}, nil
}
