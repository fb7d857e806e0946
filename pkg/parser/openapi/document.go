package openapi

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/adi-family/apigen/pkg/errs"
)

// document couples the typed OpenAPI model with the generic value tree it was
// decoded from and the declaration order lost by Go's unordered maps.
type document struct {
	api *openapi3.T

	// tree is the whole source document as a generic value tree,
	// retained verbatim for the IR's OriginalData
	tree any

	// schemaOrder is the declaration order of components.schemas
	schemaOrder []string
}

// decodeDocument deserializes source bytes into a document. A .json extension
// demands strict JSON; anything else is parsed as YAML, of which JSON is a
// subset. The document is decoded through a yaml.Node so mapping key order
// survives, then round-tripped through JSON into the typed model without any
// reference resolution.
func decodeDocument(source string, data []byte) (*document, error) {
	if strings.EqualFold(filepath.Ext(source), ".json") && !json.Valid(data) {
		return nil, errors.Mark(
			errors.Newf("file %s is not valid JSON", source), errs.ErrMalformedInput)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errs.MarkMalformed(err, FormatName, "deserialize "+source)
	}

	tree, err := nodeToValue(&root)
	if err != nil {
		return nil, errs.MarkMalformed(err, FormatName, "deserialize "+source)
	}

	raw, err := json.Marshal(tree)
	if err != nil {
		return nil, errs.MarkMalformed(err, FormatName, "normalize "+source)
	}
	var api openapi3.T
	if err := json.Unmarshal(raw, &api); err != nil {
		return nil, errs.MarkMalformed(err, FormatName, "decode "+source)
	}

	return &document{
		api:         &api,
		tree:        tree,
		schemaOrder: schemaOrder(&root),
	}, nil
}

// nodeToValue converts a yaml.Node into a generic value tree with string
// mapping keys, suitable for JSON re-serialization.
func nodeToValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeToValue(n.Content[0])
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeToValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[scalarKey(n.Content[i])] = v
		}
		return m, nil
	case yaml.SequenceNode:
		s := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeToValue(c)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		return s, nil
	case yaml.AliasNode:
		return nodeToValue(n.Alias)
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, nil
	}
}

// scalarKey renders a mapping key as a string; non-string scalar keys (e.g.
// unquoted status codes) are stringified.
func scalarKey(n *yaml.Node) string {
	var v any
	if err := n.Decode(&v); err != nil {
		return n.Value
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// schemaOrder walks the raw node tree to components.schemas and returns its
// keys in declaration order.
func schemaOrder(root *yaml.Node) []string {
	doc := root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	schemas := mappingValue(mappingValue(doc, "components"), "schemas")
	if schemas == nil || schemas.Kind != yaml.MappingNode {
		return nil
	}
	names := make([]string, 0, len(schemas.Content)/2)
	for i := 0; i+1 < len(schemas.Content); i += 2 {
		names = append(names, scalarKey(schemas.Content[i]))
	}
	return names
}

// mappingValue returns the value node for key within a mapping node, or nil.
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil {
		return nil
	}
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if scalarKey(n.Content[i]) == key {
			v := n.Content[i+1]
			if v.Kind == yaml.AliasNode {
				v = v.Alias
			}
			return v
		}
	}
	return nil
}
