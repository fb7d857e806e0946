package apigen

import (
	"os"
	"path/filepath"
	"testing"
)

const tinySpec = `openapi: 3.0.3
info:
  title: Smoke API
  version: 0.0.1
paths:
  /ping:
    get:
      responses:
        '204':
          description: pong
components:
  schemas:
    Status:
      type: object
      properties:
        ok:
          type: boolean
`

func TestValidateSpecMissingFile(t *testing.T) {
	if err := ValidateSpec("/no/such/file.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	if err := os.WriteFile(path, []byte(tinySpec), 0o644); err != nil {
		t.Fatal(err)
	}

	schema, err := ParseSpec(path)
	if err != nil {
		t.Fatalf("ParseSpec: %v", err)
	}
	if schema.Metadata.Title != "Smoke API" {
		t.Errorf("Title = %q", schema.Metadata.Title)
	}
	if len(schema.Schemas) != 1 || schema.Schemas[0].Name != "Status" {
		t.Errorf("Schemas = %+v", schema.Schemas)
	}
	if len(schema.Operations) != 1 || schema.Operations[0].ID != "get_ping" {
		t.Errorf("Operations = %+v", schema.Operations)
	}
}
