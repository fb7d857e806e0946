package openapi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adi-family/apigen/pkg/errs"
	"github.com/adi-family/apigen/pkg/ir"
)

func parsePetstore(t *testing.T) *ir.SchemaIR {
	t.Helper()
	result, err := New().Parse(filepath.Join("testdata", "petstore.yaml"), nil)
	require.NoError(t, err)
	return result
}

func findField(t *testing.T, schema ir.SchemaDefinition, name string) ir.FieldDefinition {
	t.Helper()
	for _, f := range schema.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("schema %s has no field %q", schema.Name, name)
	return ir.FieldDefinition{}
}

func findOperation(t *testing.T, result *ir.SchemaIR, id string) ir.OperationDefinition {
	t.Helper()
	for _, op := range result.Operations {
		if op.ID == id {
			return op
		}
	}
	t.Fatalf("no operation with id %q", id)
	return ir.OperationDefinition{}
}

func TestParseMetadata(t *testing.T) {
	result := parsePetstore(t)

	assert.Equal(t, "Pet Adoption API", result.Metadata.Title)
	assert.Equal(t, "1.2.0", result.Metadata.Version)
	assert.Equal(t, "Manages pets and adoption requests.", result.Metadata.Description)
	assert.Equal(t, "https://api.petadopt.example.com/v1", result.Metadata.BaseURL)
	assert.Equal(t, "external", result.Metadata.Custom["x-audience"])
}

func TestParseOriginalData(t *testing.T) {
	result := parsePetstore(t)

	assert.Equal(t, "openapi", result.Original.Format)
	assert.Equal(t, "pets-core", result.Original.Extensions["openapi.x-internal-id"],
		"document-level extensions are namespaced")

	// the whole source document survives as a generic value tree
	tree, ok := result.Original.Data.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, tree, "paths")
	assert.Contains(t, tree, "components")
	info, ok := tree["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Pet Adoption API", info["title"])
}

func TestSchemaDeclarationOrder(t *testing.T) {
	result := parsePetstore(t)

	require.Len(t, result.Schemas, 2)
	assert.Equal(t, "Pet", result.Schemas[0].Name, "declaration order, not lexical order")
	assert.Equal(t, "Owner", result.Schemas[1].Name)
	assert.Equal(t, "A pet available for adoption.", result.Schemas[0].Description)
	assert.NotEmpty(t, result.Schemas[0].Original)
}

func TestRequiredFieldMembership(t *testing.T) {
	result := parsePetstore(t)
	pet := result.Schemas[0]

	require.Len(t, pet.Fields, 10)
	requiredCount := 0
	for _, f := range pet.Fields {
		if f.Required {
			requiredCount++
		}
	}
	assert.Equal(t, 3, requiredCount)
	assert.True(t, findField(t, pet, "id").Required)
	assert.True(t, findField(t, pet, "name").Required)
	assert.True(t, findField(t, pet, "status").Required)
	assert.False(t, findField(t, pet, "birthday").Required)
}

func TestFieldTypeExtraction(t *testing.T) {
	result := parsePetstore(t)
	pet := result.Schemas[0]

	id := findField(t, pet, "id")
	assert.Equal(t, ir.TypeInfo{OpenAPIType: "integer", Format: "int64"}, id.Type)

	status := findField(t, pet, "status")
	assert.Equal(t, "string", status.Type.OpenAPIType)
	assert.Equal(t, []string{"available", "pending", "adopted"}, status.Type.Enum,
		"enum values keep source order")

	birthday := findField(t, pet, "birthday")
	assert.Equal(t, "date-time", birthday.Type.Format)

	owner := findField(t, pet, "owner")
	assert.Equal(t, "Owner", owner.Type.Ref)
	assert.Equal(t, "object", owner.Type.OpenAPIType)

	tags := findField(t, pet, "tags")
	require.True(t, tags.Type.IsArray)
	require.NotNil(t, tags.Type.Items)
	assert.Equal(t, "string", tags.Type.Items.OpenAPIType)

	previous := findField(t, pet, "previousOwners")
	require.True(t, previous.Type.IsArray)
	require.NotNil(t, previous.Type.Items)
	assert.Equal(t, "Owner", previous.Type.Items.Ref,
		"array item references resolve by name only")

	attrs := findField(t, pet, "attributes")
	assert.Equal(t, "object", attrs.Type.OpenAPIType)
	assert.Empty(t, attrs.Type.Ref)
}

func TestBrokenReferenceDegradesToUnknown(t *testing.T) {
	result := parsePetstore(t)

	sponsor := findField(t, result.Schemas[0], "sponsor")
	assert.Equal(t, "Unknown", sponsor.Type.Ref, "broken $ref must not fail the parse")
}

func TestOperationExtraction(t *testing.T) {
	result := parsePetstore(t)
	require.Len(t, result.Operations, 3)

	list := findOperation(t, result, "listPets")
	assert.Equal(t, ir.MethodGet, list.Method)
	assert.Equal(t, "/pets", list.Path)
	assert.Equal(t, []string{"pets"}, list.Tags)
	require.Len(t, list.Parameters, 2, "reference parameters are silently skipped")
	assert.Equal(t, ir.Parameter{
		Name:        "limit",
		Location:    ir.InQuery,
		Required:    false,
		SchemaType:  "integer",
		Description: "Maximum number of pets to return.",
	}, list.Parameters[0])
	assert.Equal(t, ir.InHeader, list.Parameters[1].Location)

	require.NotNil(t, list.Response)
	assert.Equal(t, ir.SchemaReference{Name: "Pet", SchemaType: "object", IsArray: true},
		*list.Response, "array-of framing is preserved")

	create := findOperation(t, result, "createPet")
	require.NotNil(t, create.RequestBody)
	assert.Equal(t, ir.SchemaReference{Name: "Pet", SchemaType: "object"}, *create.RequestBody)
	require.NotNil(t, create.Response)
	assert.False(t, create.Response.IsArray)
}

func TestOperationIDSynthesis(t *testing.T) {
	result := parsePetstore(t)

	op := findOperation(t, result, "get_users_id_posts")
	assert.Equal(t, ir.MethodGet, op.Method)
	assert.Equal(t, "/users/{id}/posts", op.Path)
	assert.Nil(t, op.Response, "204 without content yields no response reference")
}

func TestParseStrictJSON(t *testing.T) {
	result, err := New().Parse(filepath.Join("testdata", "minimal.json"), nil)
	require.NoError(t, err)

	assert.Equal(t, "Minimal API", result.Metadata.Title)
	require.Len(t, result.Schemas, 1)
	assert.Equal(t, "Pong", result.Schemas[0].Name)
	require.Len(t, result.Operations, 1)
	assert.Equal(t, "get_ping", result.Operations[0].ID)
	require.NotNil(t, result.Operations[0].Response)
	assert.Equal(t, "string", result.Operations[0].Response.SchemaType)
}

func TestParseMissingFile(t *testing.T) {
	_, err := New().Parse(filepath.Join("testdata", "does-not-exist.yaml"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestParseInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{\"openapi\": "), 0o644))

	_, err := New().Parse(path, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrMalformedInput))
}

func TestParseInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paths:\n\t/x: {}\n"), 0o644))

	_, err := New().Parse(path, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrMalformedInput))
}

func TestSupportedExtensions(t *testing.T) {
	assert.Equal(t, []string{"yaml", "yml", "json"}, New().SupportedExtensions())
	assert.Equal(t, "openapi", New().FormatName())
}
