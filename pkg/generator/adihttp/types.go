package adihttp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adi-family/apigen/pkg/ir"
)

// ZodType projects a type node onto the strict zod vocabulary required by
// @adi-family/http routes. It intentionally diverges from the plain
// TypeScript projection:
//   - reference names carry a "Schema" suffix
//   - dates are z.string().datetime(), never a date-or-string union
//   - integers are z.number().int(), not bare z.number()
//   - plain objects are z.record(z.any()), not z.any()
//
// Precedence is array > reference > enum > primitive, identical across
// every target.
func ZodType(t ir.TypeInfo) string {
	if t.IsArray {
		if t.Items != nil {
			return fmt.Sprintf("z.array(%s)", ZodType(*t.Items))
		}
		return "z.array(z.any())"
	}

	if t.Ref != "" {
		return t.Ref + "Schema"
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
		case "email":
			return "z.string().email()"
		case "uuid":
			return "z.string().uuid()"
		case "uri", "url":
			return "z.string().url()"
		case "date", "date-time":
			return "z.string().datetime()"
		default:
			return "z.string()"
		}
	case "integer":
		return "z.number().int()"
	case "number":
		return "z.number()"
	case "boolean":
		return "z.boolean()"
	case "object":
		return "z.record(z.any())"
	default:
		return "z.any()"
	}
}

// paramZodType maps a parameter's coarse schema type to a coercing zod
// expression, since query and path values always arrive as strings.
func paramZodType(schemaType string) string {
	switch schemaType {
	case "integer":
		return "z.coerce.number().int()"
	case "number":
		return "z.coerce.number()"
	case "boolean":
		return "z.coerce.boolean()"
	default:
		return "z.string()"
	}
}
