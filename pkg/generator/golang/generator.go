package golang

import (
	"bytes"
	"embed"
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

const defaultTemplate = "client.go.gotmpl"

// Generator renders Go structs and an http client from the IR.
type Generator struct{}

// New creates a Go generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator registry key.
func (g *Generator) Name() string {
	return "golang"
}

// FileExtension returns the extension for generated output.
func (g *Generator) FileExtension() string {
	return "go"
}

// Generate renders the Go client template against the shared IR.
func (g *Generator) Generate(schema *ir.SchemaIR, gen config.Generation) (*ir.GeneratedOutput, error) {
	funcMap := template.FuncMap{
		"goType": GoType,
		"pascal": utils.ToPascalCase,
		"camel":  utils.ToCamelCase,
		"packageName": func() string {
			return gen.StringOption("packageName", "client")
		},
		"clientName": func() string {
			return gen.StringOption("clientName", utils.ToPascalCase(schema.Metadata.Title)+"Client")
		},
		"baseURL": func() string {
			if schema.Metadata.BaseURL != "" {
				return schema.Metadata.BaseURL
			}
			return "http://localhost"
		},
		"goParam":    goParamType,
		"pathExpr":   pathExpr,
		"queryPairs": queryPairs,
		"jsonTag":    jsonTag,
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
		return nil, errors.Wrap(err, "render golang template")
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

// goParamType maps a parameter's coarse schema type to a Go type.
func goParamType(schemaType string) string {
	switch schemaType {
	case "integer":
		return "int"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	case "array":
		return "[]interface{}"
	default:
		return "string"
	}
}

// pathExpr builds a fmt.Sprintf expression substituting path parameters:
// /users/{id} -> fmt.Sprintf("/users/%v", id).
func pathExpr(op ir.OperationDefinition) string {
	path := op.Path
	var args []string
	for _, p := range op.Parameters {
		if p.Location == ir.InPath {
			path = strings.ReplaceAll(path, "{"+p.Name+"}", "%v")
			args = append(args, utils.ToCamelCase(p.Name))
		}
	}
	if len(args) == 0 {
		return strconv.Quote(path)
	}
	return "fmt.Sprintf(" + strconv.Quote(path) + ", " + strings.Join(args, ", ") + ")"
}

// queryPairs lists query parameters as name/variable pairs for the
// request helper.
func queryPairs(op ir.OperationDefinition) []ir.Parameter {
	var out []ir.Parameter
	for _, p := range op.Parameters {
		if p.Location == ir.InQuery {
			out = append(out, p)
		}
	}
	return out
}

// jsonTag renders the struct tag for a field, with omitempty on
// optional fields.
func jsonTag(f ir.FieldDefinition) string {
	if f.Required {
		return "`json:" + strconv.Quote(f.Name) + "`"
	}
	return "`json:" + strconv.Quote(f.Name+",omitempty") + "`"
}
