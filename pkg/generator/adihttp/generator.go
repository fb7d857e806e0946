// Package adihttp emits TypeScript route definitions for the
// @adi-family/http framework. Unlike the template-driven targets it
// writes the output directly, since the route wiring depends heavily on
// per-operation structure.
package adihttp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adi-family/apigen/pkg/config"
	"github.com/adi-family/apigen/pkg/ir"
	"github.com/adi-family/apigen/pkg/utils"
)

// Generator emits zod schemas, createRoute declarations and optional
// router/client scaffolding.
type Generator struct{}

// New creates an adihttp generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator registry key.
func (g *Generator) Name() string {
	return "typescript_adi_http"
}

// FileExtension returns the extension for generated output.
func (g *Generator) FileExtension() string {
	return "ts"
}

// Generate emits the full route module for the IR.
func (g *Generator) Generate(schema *ir.SchemaIR, gen config.Generation) (*ir.GeneratedOutput, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "// Code generated from %s %s. DO NOT EDIT.\n",
		schema.Metadata.Title, schema.Metadata.Version)
	if schema.Metadata.Description != "" {
		fmt.Fprintf(&b, "// %s\n", schema.Metadata.Description)
	}
	b.WriteString("\n")
	b.WriteString(`import { z } from "zod";` + "\n")

	includeServer := gen.BoolOption("includeServer", true)
	includeClient := gen.BoolOption("includeClient", true)

	imports := []string{"createRoute"}
	if includeServer {
		imports = append(imports, "createRouter")
	}
	if includeClient {
		imports = append(imports, "createClient")
	}
	fmt.Fprintf(&b, "import { %s } from \"@adi-family/http\";\n\n", strings.Join(imports, ", "))

	g.writeSchemas(&b, schema)
	g.writeRoutes(&b, schema)

	if includeServer {
		g.writeRouter(&b, schema, gen.StringOption("routerName", "apiRouter"))
	}
	if includeClient {
		g.writeClient(&b, schema, gen)
	}

	filename := gen.OutputFile
	if filename == "" {
		filename = "routes." + g.FileExtension()
	}
	return &ir.GeneratedOutput{
		Filename: filename,
		Content:  b.String(),
		Metadata: map[string]string{
			"generator": g.Name(),
			"schemas":   strconv.Itoa(len(schema.Schemas)),
			"routes":    strconv.Itoa(len(schema.Operations)),
		},
	}, nil
}

func (g *Generator) writeSchemas(b *strings.Builder, schema *ir.SchemaIR) {
	for _, def := range schema.Schemas {
		if def.Description != "" {
			fmt.Fprintf(b, "// %s\n", def.Description)
		}
		fmt.Fprintf(b, "export const %sSchema = z.object({\n", def.Name)
		for _, f := range def.Fields {
			suffix := ""
			if !f.Required {
				suffix = ".optional()"
			}
			fmt.Fprintf(b, "  %s: %s%s,\n", f.Name, ZodType(f.Type), suffix)
		}
		b.WriteString("});\n")
		fmt.Fprintf(b, "export type %s = z.infer<typeof %sSchema>;\n\n", def.Name, def.Name)
	}
}

func (g *Generator) writeRoutes(b *strings.Builder, schema *ir.SchemaIR) {
	for _, op := range schema.Operations {
		if op.Description != "" {
			fmt.Fprintf(b, "// %s\n", op.Description)
		}
		fmt.Fprintf(b, "export const %sRoute = createRoute({\n", utils.ToCamelCase(op.ID))
		fmt.Fprintf(b, "  method: %q,\n", op.Method)
		fmt.Fprintf(b, "  path: %q,\n", op.Path)

		if query := locatedParams(op, ir.InQuery); len(query) > 0 {
			b.WriteString("  query: z.object({\n")
			for _, p := range query {
				suffix := ""
				if !p.Required {
					suffix = ".optional()"
				}
				fmt.Fprintf(b, "    %s: %s%s,\n", p.Name, paramZodType(p.SchemaType), suffix)
			}
			b.WriteString("  }).optional(),\n")
		}

		if path := locatedParams(op, ir.InPath); len(path) > 0 {
			b.WriteString("  params: z.object({\n")
			for _, p := range path {
				fmt.Fprintf(b, "    %s: %s,\n", p.Name, paramZodType(p.SchemaType))
			}
			b.WriteString("  }),\n")
		}

		if op.RequestBody != nil && op.RequestBody.Name != "" {
			fmt.Fprintf(b, "  body: %s,\n", referenceSchema(*op.RequestBody))
		}

		if op.Response != nil {
			fmt.Fprintf(b, "  response: %s,\n", referenceSchema(*op.Response))
		} else {
			b.WriteString("  response: z.void(),\n")
		}
		b.WriteString("});\n\n")
	}
}

func (g *Generator) writeRouter(b *strings.Builder, schema *ir.SchemaIR, name string) {
	fmt.Fprintf(b, "export const %s = createRouter([\n", name)
	for _, op := range schema.Operations {
		fmt.Fprintf(b, "  %sRoute,\n", utils.ToCamelCase(op.ID))
	}
	b.WriteString("]);\n\n")
}

func (g *Generator) writeClient(b *strings.Builder, schema *ir.SchemaIR, gen config.Generation) {
	name := gen.StringOption("clientName", "apiClient")
	envVar := gen.StringOption("baseUrlEnvVar", "API_BASE_URL")
	baseURL := schema.Metadata.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	fmt.Fprintf(b, "export const %s = createClient({\n", name)
	fmt.Fprintf(b, "  baseUrl: process.env.%s ?? %q,\n", envVar, baseURL)
	b.WriteString("  routes: [\n")
	for _, op := range schema.Operations {
		fmt.Fprintf(b, "    %sRoute,\n", utils.ToCamelCase(op.ID))
	}
	b.WriteString("  ],\n")
	b.WriteString("});\n")
}

// referenceSchema renders a response or body reference: named references
// get the Schema suffix, anonymous ones degrade to loose zod shapes.
func referenceSchema(ref ir.SchemaReference) string {
	var inner string
	switch {
	case ref.Name != "":
		inner = ref.Name + "Schema"
	default:
		inner = ZodType(ir.TypeInfo{OpenAPIType: ref.SchemaType})
	}
	if ref.IsArray {
		return "z.array(" + inner + ")"
	}
	return inner
}

func locatedParams(op ir.OperationDefinition, loc ir.Location) []ir.Parameter {
	var out []ir.Parameter
	for _, p := range op.Parameters {
		if p.Location == loc {
			out = append(out, p)
		}
	}
	return out
}
