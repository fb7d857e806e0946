// Package ir defines the format-agnostic intermediate representation produced
// by input parsers and consumed by every code generator. The IR is built once
// per invocation and is read-only afterwards, so it may be shared freely
// across generation targets.
package ir

import "encoding/json"

// SchemaIR is the root aggregate for a parsed API description.
type SchemaIR struct {
	// Metadata normalized from the source document
	Metadata Metadata `json:"metadata"`

	// Schemas in source declaration order
	Schemas []SchemaDefinition `json:"schemas"`

	// Operations extracted from the document's paths
	Operations []OperationDefinition `json:"operations"`

	// Original preserves the full source document for extensibility
	Original OriginalData `json:"original"`
}

// OriginalData retains everything from the input so generators can recover
// information the normalized IR intentionally drops.
type OriginalData struct {
	// Format identifier (e.g., "openapi")
	Format string `json:"format"`

	// Data is the whole source document as a generic value tree
	Data any `json:"data"`

	// Extensions holds format-specific document-level extensions,
	// namespaced by format so different scopes never collide
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Metadata holds document-level information. Immutable once built.
type Metadata struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	// BaseURL is the first declared server, when present
	BaseURL string `json:"base_url,omitempty"`
	// Custom preserves vendor-extension keys (x-*) from the document info
	Custom map[string]any `json:"custom,omitempty"`
}

// SchemaDefinition is one named, reusable schema from the source document.
type SchemaDefinition struct {
	Name        string            `json:"name"`
	Fields      []FieldDefinition `json:"fields"`
	Description string            `json:"description,omitempty"`
	// Original is the raw source fragment this definition was built from
	Original json.RawMessage `json:"original,omitempty"`
}

// FieldDefinition is a single property of an object schema.
type FieldDefinition struct {
	Name        string          `json:"name"`
	Type        TypeInfo        `json:"type_info"`
	Required    bool            `json:"required"`
	Description string          `json:"description,omitempty"`
	Original    json.RawMessage `json:"original,omitempty"`
}

// TypeInfo is the recursive type node at the core of the IR. Exactly one of
// {array-with-items, reference, enum, primitive-with-format} is the active
// interpretation at render time; projections resolve the ambiguity in the
// fixed precedence order array > reference > enum > primitive.
type TypeInfo struct {
	// OpenAPIType is one of: string, number, integer, boolean, object, array, any
	OpenAPIType string `json:"openapi_type"`

	// Format qualifies primitives (e.g. date-time, int64, email)
	Format string `json:"format,omitempty"`

	// IsArray marks collection types; Items is set iff IsArray is true
	IsArray bool      `json:"is_array"`
	Items   *TypeInfo `json:"array_item_type,omitempty"`

	// Ref names another SchemaDefinition, resolved by name only
	Ref string `json:"reference,omitempty"`

	// Enum lists the closed set of string values, in source order
	Enum []string `json:"enum_values,omitempty"`
}

// Equal reports whether two type trees are structurally identical.
func (t *TypeInfo) Equal(o *TypeInfo) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.OpenAPIType != o.OpenAPIType || t.Format != o.Format ||
		t.IsArray != o.IsArray || t.Ref != o.Ref {
		return false
	}
	if len(t.Enum) != len(o.Enum) {
		return false
	}
	for i := range t.Enum {
		if t.Enum[i] != o.Enum[i] {
			return false
		}
	}
	return t.Items.Equal(o.Items)
}

// Walk visits t and every nested item type in pre-order.
func (t *TypeInfo) Walk(fn func(*TypeInfo)) {
	if t == nil {
		return
	}
	fn(t)
	t.Items.Walk(fn)
}

// Method is an HTTP method. The set is closed.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// Methods lists every supported method in extraction order.
var Methods = []Method{
	MethodGet, MethodPost, MethodPut, MethodDelete,
	MethodPatch, MethodHead, MethodOptions,
}

// IsValid reports whether m is one of the supported methods.
func (m Method) IsValid() bool {
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}

// OperationDefinition is one extracted API operation (path + method).
type OperationDefinition struct {
	// ID is the explicit operationId or a synthesized method_path identifier
	ID          string           `json:"id"`
	Method      Method           `json:"method"`
	Path        string           `json:"path"`
	Parameters  []Parameter      `json:"parameters"`
	RequestBody *SchemaReference `json:"request_body,omitempty"`
	Response    *SchemaReference `json:"response,omitempty"`
	Description string           `json:"description,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Original    json.RawMessage  `json:"original,omitempty"`
}

// Location is where a parameter is carried. The set is closed.
type Location string

const (
	InQuery  Location = "query"
	InPath   Location = "path"
	InHeader Location = "header"
	InCookie Location = "cookie"
)

// IsValid reports whether l is a known parameter location.
func (l Location) IsValid() bool {
	switch l {
	case InQuery, InPath, InHeader, InCookie:
		return true
	}
	return false
}

// Parameter is one operation parameter.
type Parameter struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
	Required bool     `json:"required"`
	// SchemaType is a coarse primitive classification; callers must not
	// assume fidelity beyond that
	SchemaType  string `json:"schema_type"`
	Description string `json:"description,omitempty"`
}

// SchemaReference links an operation body or response to a named schema
// where a full TypeInfo is unnecessary.
type SchemaReference struct {
	Name       string `json:"name"`
	SchemaType string `json:"schema_type"`
	// IsArray distinguishes "an array of Name" from "a Name"
	IsArray bool `json:"is_array,omitempty"`
}

// GeneratedOutput is one named content blob produced by a generation target.
// Content is opaque text from the pipeline's perspective.
type GeneratedOutput struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	// Metadata carries generator-specific annotations about the output
	Metadata map[string]string `json:"metadata,omitempty"`
}
