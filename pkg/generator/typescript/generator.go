package typescript

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/cockroachdb/errors"

	"github.com/adi-family/apigen/pkg/config"
	"github.com/adi-family/apigen/pkg/ir"
	"github.com/adi-family/apigen/pkg/utils"
)

//go:embed templates/*
var templatesFS embed.FS

const defaultTemplate = "client.ts.gotmpl"

// Generator renders a zod-validated TypeScript client from the IR.
type Generator struct{}

// New creates a TypeScript generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator registry key.
func (g *Generator) Name() string {
	return "typescript"
}

// FileExtension returns the extension for generated output.
func (g *Generator) FileExtension() string {
	return "ts"
}

// Generate renders the TypeScript client template against the shared IR.
func (g *Generator) Generate(schema *ir.SchemaIR, gen config.Generation) (*ir.GeneratedOutput, error) {
	funcMap := template.FuncMap{
		"zodType": ZodType,
		"pascal":  utils.ToPascalCase,
		"camel":   utils.ToCamelCase,
		"snake":   utils.ToSnakeCase,
		"clientName": func() string {
			return gen.StringOption("clientName", utils.ToPascalCase(schema.Metadata.Title)+"Client")
		},
		"baseURL": func() string {
			if schema.Metadata.BaseURL != "" {
				return schema.Metadata.BaseURL
			}
			return "http://localhost"
		},
		"tsParam":     tsParamType,
		"pathExpr":    pathExpr,
		"queryObject": queryObject,
	}
	for k, v := range sprig.FuncMap() {
		funcMap[k] = v
	}

	tmpl, err := loadTemplate(gen, funcMap)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{"IR": schema, "Options": gen.Options}); err != nil {
		return nil, errors.Wrap(err, "render typescript template")
	}

	filename := gen.OutputFile
	if filename == "" {
		filename = "client." + g.FileExtension()
	}
	return &ir.GeneratedOutput{
		Filename: filename,
		Content:  buf.String(),
		Metadata: map[string]string{
			"generator": g.Name(),
			"schemas":   strconv.Itoa(len(schema.Schemas)),
		},
	}, nil
}

func loadTemplate(gen config.Generation, funcMap template.FuncMap) (*template.Template, error) {
	if gen.Template != "" {
		data, err := os.ReadFile(gen.Template)
		if err != nil {
			return nil, errors.Wrapf(err, "read template %s", gen.Template)
		}
		return template.New(filepath.Base(gen.Template)).Funcs(funcMap).Parse(string(data))
	}
	data, err := templatesFS.ReadFile("templates/" + defaultTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "read embedded template")
	}
	return template.New(defaultTemplate).Funcs(funcMap).Parse(string(data))
}

// tsParamType maps a parameter's coarse schema type to a TypeScript type.
func tsParamType(schemaType string) string {
	switch schemaType {
	case "integer", "number":
		return "number"
	case "boolean":
		return "boolean"
	case "array":
		return "unknown[]"
	default:
		return "string"
	}
}

// pathExpr builds a template literal substituting path parameters:
// /users/{id} -> `/users/${params.id}`.
func pathExpr(op ir.OperationDefinition) string {
	path := op.Path
	for _, p := range op.Parameters {
		if p.Location == ir.InPath {
			path = strings.ReplaceAll(path, "{"+p.Name+"}",
				"${params."+utils.ToCamelCase(p.Name)+"}")
		}
	}
	return "`" + path + "`"
}

// queryObject builds the object literal of query parameters passed to the
// request helper.
func queryObject(op ir.OperationDefinition) string {
	var parts []string
	for _, p := range op.Parameters {
		if p.Location == ir.InQuery {
			parts = append(parts, fmt.Sprintf("%s: params.%s", utils.ToCamelCase(p.Name), utils.ToCamelCase(p.Name)))
		}
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
