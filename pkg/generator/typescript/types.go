package typescript

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adi-family/apigen/pkg/ir"
)

// ZodType projects a type node onto a zod validation expression. Ambiguous
// nodes are resolved in the fixed precedence order array > reference > enum >
// primitive, identically across every target projection.
func ZodType(t ir.TypeInfo) string {
	if t.IsArray {
		if t.Items != nil {
			return fmt.Sprintf("z.array(%s)", ZodType(*t.Items))
		}
		return "z.array(z.any())"
	}

	if t.Ref != "" {
		return t.Ref
	}

	if len(t.Enum) > 0 {
		quoted := make([]string, len(t.Enum))
		for i, v := range t.Enum {
			quoted[i] = strconv.Quote(v)
		}
		return fmt.Sprintf("z.enum([%s])", strings.Join(quoted, ", "))
	}

	switch t.OpenAPIType {
	case "string":
		switch t.Format {
		case "date", "date-time":
			// dates arrive as strings over the wire but callers may pass Date
			return "z.date().or(z.string())"
		case "email":
			return "z.string().email()"
		case "uuid":
			return "z.string().uuid()"
		case "uri":
			return "z.string().url()"
		default:
			return "z.string()"
		}
	case "integer", "number":
		return "z.number()"
	case "boolean":
		return "z.boolean()"
	case "object":
		return "z.any()"
	default:
		return "z.any()"
	}
}
