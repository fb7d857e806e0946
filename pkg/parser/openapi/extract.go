package openapi

import (
	"encoding/json"
	"slices"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/adi-family/apigen/pkg/ir"
)

// unknownRef is the placeholder name for a reference that cannot be resolved
// to a schema name. Best-effort on purpose: one broken cross-reference must
// not abort extraction of an otherwise valid document.
const unknownRef = "Unknown"

func extractMetadata(api *openapi3.T) ir.Metadata {
	var meta ir.Metadata
	if api.Info != nil {
		meta.Title = api.Info.Title
		meta.Version = api.Info.Version
		meta.Description = api.Info.Description
		if len(api.Info.Extensions) > 0 {
			meta.Custom = make(map[string]any, len(api.Info.Extensions))
			for k, v := range api.Info.Extensions {
				meta.Custom[k] = v
			}
		}
	}
	if len(api.Servers) > 0 && api.Servers[0] != nil {
		meta.BaseURL = api.Servers[0].URL
	}
	return meta
}

// documentExtensions namespaces document-level x-* keys so they never collide
// with extensions captured from other scopes.
func documentExtensions(api *openapi3.T) map[string]any {
	if len(api.Extensions) == 0 {
		return nil
	}
	out := make(map[string]any, len(api.Extensions))
	for k, v := range api.Extensions {
		out[FormatName+"."+k] = v
	}
	return out
}

// extractSchemas builds a SchemaDefinition for every inline entry under
// components.schemas, in source declaration order.
func extractSchemas(doc *document) []ir.SchemaDefinition {
	api := doc.api
	if api.Components == nil || len(api.Components.Schemas) == 0 {
		return nil
	}

	names := doc.schemaOrder
	if len(names) == 0 {
		// documents constructed in memory carry no node order
		names = sortedKeys(api.Components.Schemas)
	}

	out := make([]ir.SchemaDefinition, 0, len(names))
	for _, name := range names {
		sr, ok := api.Components.Schemas[name]
		if !ok || sr == nil || sr.Ref != "" || sr.Value == nil {
			continue // inline definitions only
		}
		original, _ := json.Marshal(sr.Value)
		out = append(out, ir.SchemaDefinition{
			Name:        name,
			Fields:      extractFields(sr.Value),
			Description: sr.Value.Description,
			Original:    original,
		})
	}
	return out
}

// extractFields walks the properties of an object schema. Non-object schemas
// have no fields.
func extractFields(schema *openapi3.Schema) []ir.FieldDefinition {
	if schema.Type == nil || !schema.Type.Is(openapi3.TypeObject) {
		return nil
	}

	var fields []ir.FieldDefinition
	for _, name := range sortedKeys(schema.Properties) {
		pr := schema.Properties[name]
		if pr == nil {
			continue
		}
		required := slices.Contains(schema.Required, name)

		if pr.Ref != "" {
			original, _ := json.Marshal(map[string]string{"$ref": pr.Ref})
			fields = append(fields, ir.FieldDefinition{
				Name:     name,
				Type:     ir.TypeInfo{OpenAPIType: "object", Ref: refName(pr.Ref)},
				Required: required,
				Original: original,
			})
			continue
		}
		if pr.Value == nil {
			continue
		}

		original, _ := json.Marshal(pr.Value)
		fields = append(fields, ir.FieldDefinition{
			Name:        name,
			Type:        typeInfo(pr.Value),
			Required:    required,
			Description: pr.Value.Description,
			Original:    original,
		})
	}
	return fields
}

// typeInfo maps one schema node to the recursive IR type node.
func typeInfo(s *openapi3.Schema) ir.TypeInfo {
	t := s.Type
	switch {
	case t == nil:
		return ir.TypeInfo{OpenAPIType: "any"}
	case t.Is(openapi3.TypeString):
		return ir.TypeInfo{OpenAPIType: "string", Format: s.Format, Enum: stringEnum(s.Enum)}
	case t.Is(openapi3.TypeNumber):
		return ir.TypeInfo{OpenAPIType: "number", Format: s.Format}
	case t.Is(openapi3.TypeInteger):
		return ir.TypeInfo{OpenAPIType: "integer", Format: s.Format}
	case t.Is(openapi3.TypeBoolean):
		return ir.TypeInfo{OpenAPIType: "boolean"}
	case t.Is(openapi3.TypeArray):
		item := arrayItem(s.Items)
		return ir.TypeInfo{OpenAPIType: "array", IsArray: true, Items: &item}
	case t.Is(openapi3.TypeObject):
		return ir.TypeInfo{OpenAPIType: "object"}
	default:
		return ir.TypeInfo{OpenAPIType: "any"}
	}
}

// arrayItem resolves the element type of an array schema. A referenced item
// is kept as one level of name-only indirection, never dereferenced.
func arrayItem(items *openapi3.SchemaRef) ir.TypeInfo {
	switch {
	case items == nil:
		return ir.TypeInfo{OpenAPIType: "any"}
	case items.Ref != "":
		return ir.TypeInfo{OpenAPIType: "object", Ref: refName(items.Ref)}
	case items.Value == nil:
		return ir.TypeInfo{OpenAPIType: "any"}
	default:
		return typeInfo(items.Value)
	}
}

// stringEnum keeps the string members of an enumeration in source order.
// Null and non-string members are dropped, not preserved.
func stringEnum(values []any) []string {
	var out []string
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// refName extracts the schema name from a $ref string.
func refName(ref string) string {
	parts := strings.Split(ref, "/")
	if name := parts[len(parts)-1]; name != "" {
		return name
	}
	return unknownRef
}

func extractOperations(api *openapi3.T) []ir.OperationDefinition {
	if api.Paths == nil {
		return nil
	}
	pathMap := api.Paths.Map()
	paths := make([]string, 0, len(pathMap))
	for p := range pathMap {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var out []ir.OperationDefinition
	for _, path := range paths {
		item := pathMap[path]
		if item == nil {
			continue
		}
		for _, method := range ir.Methods {
			op := operationFor(item, method)
			if op == nil {
				continue
			}
			out = append(out, extractOperation(path, method, op))
		}
	}
	return out
}

func operationFor(item *openapi3.PathItem, m ir.Method) *openapi3.Operation {
	switch m {
	case ir.MethodGet:
		return item.Get
	case ir.MethodPost:
		return item.Post
	case ir.MethodPut:
		return item.Put
	case ir.MethodDelete:
		return item.Delete
	case ir.MethodPatch:
		return item.Patch
	case ir.MethodHead:
		return item.Head
	case ir.MethodOptions:
		return item.Options
	}
	return nil
}

func extractOperation(path string, method ir.Method, op *openapi3.Operation) ir.OperationDefinition {
	original, _ := json.Marshal(op)
	return ir.OperationDefinition{
		ID:          operationID(op.OperationID, method, path),
		Method:      method,
		Path:        path,
		Parameters:  extractParameters(op.Parameters),
		RequestBody: extractRequestBody(op.RequestBody),
		Response:    extractResponse(op.Responses),
		Description: op.Description,
		Tags:        op.Tags,
		Original:    original,
	}
}

// operationID returns the explicit operationId or synthesizes one from the
// method and path: GET /users/{id}/posts -> get_users_id_posts.
func operationID(explicit string, method ir.Method, path string) string {
	if explicit != "" {
		return explicit
	}
	id := strings.ToLower(string(method)) + strings.ReplaceAll(path, "/", "_")
	return strings.NewReplacer("{", "", "}", "").Replace(id)
}

// extractParameters keeps inline parameters only; reference parameters are
// skipped.
func extractParameters(params openapi3.Parameters) []ir.Parameter {
	out := make([]ir.Parameter, 0, len(params))
	for _, pr := range params {
		if pr == nil || pr.Ref != "" || pr.Value == nil {
			continue
		}
		p := pr.Value
		out = append(out, ir.Parameter{
			Name:        p.Name,
			Location:    ir.Location(p.In),
			Required:    p.Required,
			SchemaType:  parameterType(p.Schema),
			Description: p.Description,
		})
	}
	return out
}

// parameterType gives the coarse primitive classification of a parameter
// schema, defaulting to "string" when no schema is declared.
func parameterType(sr *openapi3.SchemaRef) string {
	if sr == nil {
		return "string"
	}
	if sr.Ref != "" || sr.Value == nil {
		return "any"
	}
	t := coarseType(sr.Value)
	if t == "object" {
		return "any"
	}
	return t
}

func coarseType(s *openapi3.Schema) string {
	t := s.Type
	switch {
	case t == nil:
		return "any"
	case t.Is(openapi3.TypeString):
		return "string"
	case t.Is(openapi3.TypeNumber):
		return "number"
	case t.Is(openapi3.TypeInteger):
		return "integer"
	case t.Is(openapi3.TypeBoolean):
		return "boolean"
	case t.Is(openapi3.TypeArray):
		return "array"
	case t.Is(openapi3.TypeObject):
		return "object"
	default:
		return "any"
	}
}

func extractRequestBody(br *openapi3.RequestBodyRef) *ir.SchemaReference {
	if br == nil || br.Ref != "" || br.Value == nil {
		return nil
	}
	media := pickContent(br.Value.Content)
	if media == nil || media.Schema == nil {
		return nil
	}
	return schemaReference(media.Schema)
}

// extractResponse picks the lowest 2xx response with usable content, falling
// back to the default response.
func extractResponse(responses *openapi3.Responses) *ir.SchemaReference {
	if responses == nil {
		return nil
	}
	m := responses.Map()
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		if !strings.HasPrefix(code, "2") {
			continue
		}
		if ref := responseReference(m[code]); ref != nil {
			return ref
		}
	}
	return responseReference(m["default"])
}

func responseReference(rr *openapi3.ResponseRef) *ir.SchemaReference {
	if rr == nil || rr.Ref != "" || rr.Value == nil {
		return nil
	}
	media := pickContent(rr.Value.Content)
	if media == nil || media.Schema == nil {
		return nil
	}
	return schemaReference(media.Schema)
}

// schemaReference mirrors the field-level reference/array/primitive rules,
// additionally distinguishing "an array of X" from "an X" so generators can
// decide collection vs singular framing.
func schemaReference(sr *openapi3.SchemaRef) *ir.SchemaReference {
	if sr.Ref != "" {
		return &ir.SchemaReference{Name: refName(sr.Ref), SchemaType: "object"}
	}
	if sr.Value == nil {
		return nil
	}
	s := sr.Value
	if s.Type != nil && s.Type.Is(openapi3.TypeArray) {
		if s.Items != nil && s.Items.Ref != "" {
			return &ir.SchemaReference{Name: refName(s.Items.Ref), SchemaType: "object", IsArray: true}
		}
		return &ir.SchemaReference{SchemaType: "any", IsArray: true}
	}
	return &ir.SchemaReference{SchemaType: coarseType(s)}
}

func pickContent(content openapi3.Content) *openapi3.MediaType {
	if len(content) == 0 {
		return nil
	}
	if mt, ok := content["application/json"]; ok {
		return mt
	}
	return content[sortedKeys(content)[0]]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
