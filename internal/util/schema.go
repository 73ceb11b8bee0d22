package util

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
)

// Field describes one exported struct field as seen by the tool layer.
type Field struct {
	Name        string
	Type        string
	Required    bool
	Description string
}

// StructFields walks the exported fields of a struct (or pointer to struct)
// using reflection. Field names follow the `json` tag, descriptions come from
// the `description` tag, and a field is required unless it is a pointer or
// tagged omitempty. Non-struct inputs yield nil.
func StructFields(structType any) []Field {
	t := reflect.TypeOf(structType)
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil
	}

	fields := make([]Field, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		fieldName := field.Name
		if jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" {
				fieldName = parts[0]
			}
		}

		fields = append(fields, Field{
			Name:        fieldName,
			Type:        JSONType(field.Type),
			Required:    !hasOmitEmpty(jsonTag) && !isPointer(field.Type),
			Description: field.Tag.Get("description"),
		})
	}

	return fields
}

// JSONType returns the JSON schema type for a given Go type.
func JSONType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Ptr:
		return JSONType(t.Elem())
	default:
		return "string"
	}
}

// hasOmitEmpty checks if a JSON tag has the "omitempty" option.
func hasOmitEmpty(tag string) bool {
	parts := strings.Split(tag, ",")
	for _, part := range parts[1:] {
		if strings.TrimSpace(part) == "omitempty" {
			return true
		}
	}
	return false
}

// isPointer checks if a type is a pointer.
func isPointer(t reflect.Type) bool {
	return t.Kind() == reflect.Ptr
}

// IsValidType checks if a decoded JSON value matches the expected schema type.
func IsValidType(value any, expectedType string) bool {
	if value == nil {
		return true // nil is valid for any type
	}

	switch expectedType {
	case "string":
		_, ok := value.(string)
		return ok
	case "integer":
		switch v := value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		case float64: // JSON unmarshaling often produces float64 for numbers
			return v == math.Trunc(v) && !math.IsInf(v, 0)
		case json.Number:
			if _, err := v.Int64(); err == nil {
				return true
			}
			f, err := v.Float64()
			return err == nil && f == math.Trunc(f)
		}
		return false
	case "number":
		switch v := value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
			float32, float64:
			return true
		case json.Number:
			_, err := v.Float64()
			return err == nil
		}
		return false
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "array":
		_, ok := value.([]any)
		return ok
	case "object":
		_, ok := value.(map[string]any)
		return ok
	default:
		return true // Unknown types are assumed valid
	}
}
