package typescript

import (
	"strings"
	"testing"

	"github.com/adi-family/apigen/pkg/config"
	"github.com/adi-family/apigen/pkg/ir"
)

func sampleIR() *ir.SchemaIR {
	return &ir.SchemaIR{
		Metadata: ir.Metadata{Title: "Pet API", Version: "1.0.0", BaseURL: "https://api.example.com"},
		Schemas: []ir.SchemaDefinition{
			{
				Name: "Pet",
				Fields: []ir.FieldDefinition{
					{Name: "id", Required: true, Type: ir.TypeInfo{OpenAPIType: "integer", Format: "int64"}},
					{Name: "name", Required: true, Type: ir.TypeInfo{OpenAPIType: "string"}},
					{Name: "birthday", Type: ir.TypeInfo{OpenAPIType: "string", Format: "date-time"}},
				},
			},
		},
		Operations: []ir.OperationDefinition{
			{
				ID:     "get_pets_id",
				Method: ir.MethodGet,
				Path:   "/pets/{id}",
				Parameters: []ir.Parameter{
					{Name: "id", Location: ir.InPath, Required: true, SchemaType: "integer"},
					{Name: "verbose", Location: ir.InQuery, SchemaType: "boolean"},
				},
				Response: &ir.SchemaReference{Name: "Pet", SchemaType: "object"},
			},
		},
	}
}

func TestGenerateRendersSchemasAndClient(t *testing.T) {
	out, err := New().Generate(sampleIR(), config.Generation{Generator: "typescript"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Filename != "client.ts" {
		t.Errorf("Filename = %q, expected client.ts", out.Filename)
	}

	for _, want := range []string{
		`import { z } from "zod";`,
		"export const Pet = z.object({",
		"  id: z.number(),",
		"  birthday: z.date().or(z.string()).optional(),",
		"export type PetType = z.infer<typeof Pet>;",
		"export class PetApiClient {",
		`baseUrl: string = "https://api.example.com"`,
		"async getPetsId(params: {",
		"    id: number;",
		"    verbose?: boolean;",
		"`/pets/${params.id}`",
		"{ verbose: params.verbose }",
	} {
		if !strings.Contains(out.Content, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateClientNameOption(t *testing.T) {
	gen := config.Generation{
		OutputFile: "api.ts",
		Options:    map[string]any{"clientName": "PetsClient"},
	}
	out, err := New().Generate(sampleIR(), gen)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Filename != "api.ts" {
		t.Errorf("Filename = %q, expected api.ts", out.Filename)
	}
	if !strings.Contains(out.Content, "export class PetsClient {") {
		t.Error("clientName option ignored")
	}
}
