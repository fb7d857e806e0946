package golang

import "github.com/adi-family/apigen/pkg/ir"

// GoType projects a type node onto a Go type expression. Precedence is
// array > reference > enum > primitive, identical across every target.
// Integer and number widths follow the declared format; dates stay plain
// strings for this target.
func GoType(t ir.TypeInfo) string {
	if t.IsArray {
		if t.Items != nil {
			return "[]" + GoType(*t.Items)
		}
		return "[]interface{}"
	}

	if t.Ref != "" {
		return t.Ref
	}

	if len(t.Enum) > 0 {
		return "string"
	}

	switch t.OpenAPIType {
	case "string":
		return "string"
	case "integer":
		switch t.Format {
		case "int32":
			return "int32"
		case "int64":
			return "int64"
		default:
			return "int"
		}
	case "number":
		switch t.Format {
		case "float":
			return "float32"
		case "double":
			return "float64"
		default:
			return "float64"
		}
	case "boolean":
		return "bool"
	case "object":
		return "map[string]interface{}"
	default:
		return "interface{}"
	}
}
