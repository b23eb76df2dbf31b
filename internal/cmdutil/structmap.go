package cmdutil

import (
	"reflect"
	"strings"
	"unicode"
)

// StructToMapOptions configures StructToMap behavior.
type StructToMapOptions struct {
	OmitFields   map[string]bool
	KeyOverrides map[string]string
}

// StructToMap converts a struct into a row map. Keys come from the `db`
// struct tag when present and fall back to the snake_case field name.
func StructToMap[T any](value T, opts StructToMapOptions) map[string]any {
	result := make(map[string]any)
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return result
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return result
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" || opts.OmitFields[field.Name] {
			continue
		}

		key := columnName(field)
		if key == "-" {
			continue
		}
		if override, ok := opts.KeyOverrides[field.Name]; ok {
			key = override
		}

		result[key] = v.Field(i).Interface()
	}
	return result
}

func columnName(field reflect.StructField) string {
	if tag, ok := field.Tag.Lookup("db"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			return name
		}
	}
	return toSnakeCase(field.Name)
}

func toSnakeCase(input string) string {
	runes := []rune(input)
	var builder strings.Builder
	builder.Grow(len(runes) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				builder.WriteRune('_')
			}
		}
		builder.WriteRune(unicode.ToLower(r))
	}

	return builder.String()
}
