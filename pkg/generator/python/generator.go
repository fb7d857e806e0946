package python

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"sort"
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

const defaultTemplate = "client.py.gotmpl"

// Generator renders Python dataclass models and a requests-free client
// from the IR.
type Generator struct{}

// New creates a Python generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator registry key.
func (g *Generator) Name() string {
	return "python"
}

// FileExtension returns the extension for generated output.
func (g *Generator) FileExtension() string {
	return "py"
}

// Generate renders the Python client template against the shared IR.
func (g *Generator) Generate(schema *ir.SchemaIR, gen config.Generation) (*ir.GeneratedOutput, error) {
	funcMap := template.FuncMap{
		"pyType": PyType,
		"pascal": utils.ToPascalCase,
		"snake":  utils.ToSnakeCase,
		"clientName": func() string {
			return gen.StringOption("clientName", utils.ToPascalCase(schema.Metadata.Title)+"Client")
		},
		"baseURL": func() string {
			if schema.Metadata.BaseURL != "" {
				return schema.Metadata.BaseURL
			}
			return "http://localhost"
		},
		"orderedFields": orderedFields,
		"orderedParams": orderedParams,
		"pyParam":       pyParamType,
		"pathFormat":    pathFormat,
		"queryDict":     queryDict,
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
		return nil, errors.Wrap(err, "render python template")
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

// orderedFields returns required fields before optional ones, preserving
// the relative order inside each group. Dataclass fields with defaults
// must follow the ones without.
func orderedFields(fields []ir.FieldDefinition) []ir.FieldDefinition {
	ordered := make([]ir.FieldDefinition, len(fields))
	copy(ordered, fields)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Required && !ordered[j].Required
	})
	return ordered
}

// orderedParams returns required parameters before optional ones, since
// Python arguments with defaults must follow the ones without.
func orderedParams(params []ir.Parameter) []ir.Parameter {
	ordered := make([]ir.Parameter, len(params))
	copy(ordered, params)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Required && !ordered[j].Required
	})
	return ordered
}

// pyParamType maps a parameter's coarse schema type to a Python annotation.
func pyParamType(schemaType string) string {
	switch schemaType {
	case "integer":
		return "int"
	case "number":
		return "float"
	case "boolean":
		return "bool"
	case "array":
		return "List[Any]"
	default:
		return "str"
	}
}

// pathFormat builds an f-string substituting path parameters:
// /users/{id} -> f"/users/{id}".
func pathFormat(op ir.OperationDefinition) string {
	path := op.Path
	for _, p := range op.Parameters {
		if p.Location == ir.InPath {
			path = strings.ReplaceAll(path, "{"+p.Name+"}",
				"{"+utils.ToSnakeCase(p.Name)+"}")
		}
	}
	return `f"` + path + `"`
}

// queryDict builds the dict literal of query parameters passed to the
// request helper.
func queryDict(op ir.OperationDefinition) string {
	var parts []string
	for _, p := range op.Parameters {
		if p.Location == ir.InQuery {
			parts = append(parts, `"`+p.Name+`": `+utils.ToSnakeCase(p.Name))
		}
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
