package python

import (
	"fmt"

	"github.com/adi-family/apigen/pkg/ir"
)

// PyType projects a type node onto a Python type annotation. Precedence is
// array > reference > enum > primitive, identical across every target.
func PyType(t ir.TypeInfo) string {
	if t.IsArray {
		if t.Items != nil {
			return fmt.Sprintf("List[%s]", PyType(*t.Items))
		}
		return "List[Any]"
	}

	if t.Ref != "" {
		return t.Ref
	}

	// enum members are rendered separately; the annotation stays a str
	if len(t.Enum) > 0 {
		return "str"
	}

	switch t.OpenAPIType {
	case "string":
		switch t.Format {
		case "date", "date-time":
			return "datetime"
		default:
			return "str"
		}
	case "integer":
		return "int"
	case "number":
		return "float"
	case "boolean":
		return "bool"
	case "object":
		return "Dict[str, Any]"
	default:
		return "Any"
	}
}
