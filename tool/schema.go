package tool

import (
	"fmt"
	"sort"

	"github.com/hupe1980/toolagent/internal/util"
)

// SchemaFromStruct derives a Schema from the exported fields of a struct
// using its `json` and `description` tags. Pointer and omitempty fields are
// optional; all others are required.
func SchemaFromStruct(structType any) Schema {
	fields := util.StructFields(structType)
	schema := make(Schema, len(fields))
	for _, f := range fields {
		schema[f.Name] = Parameter{
			Type:        f.Type,
			Required:    f.Required,
			Description: f.Description,
		}
	}
	return schema
}

// ValidateArguments checks args against the schema the way a native call
// would reject them: every required parameter must be present, no undeclared
// argument may be passed and each value must match its declared type.
func ValidateArguments(args map[string]any, schema Schema) error {
	for _, name := range schema.Names() {
		if !schema[name].Required {
			continue
		}
		if _, exists := args[name]; !exists {
			return &ValidationError{
				Field:   name,
				Message: "required argument is missing",
			}
		}
	}

	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := args[name]
		param, exists := schema[name]
		if !exists {
			return &ValidationError{
				Field:   name,
				Value:   value,
				Message: "unexpected argument",
			}
		}
		if !util.IsValidType(value, param.Type) {
			return &ValidationError{
				Field:   name,
				Value:   value,
				Message: fmt.Sprintf("expected type %s, got %T", param.Type, value),
			}
		}
	}

	return nil
}
