// Package tool implements the capability side of the tool-call protocol:
// named tools with a declared parameter schema, an immutable registry used to
// resolve model requests, and helpers to turn plain Go functions into tools.
package tool

import (
	"context"
	"fmt"
	"sort"
)

// Tool defines the interface for extending agent capabilities with external functions.
//
// The agent never inspects a tool's implementation: it only relies on the
// declared name, description and parameter schema (rendered into the system
// prompt) and on Call, which receives the arguments decoded from the model's
// tool-call directive.
//
// Tool implementations should:
//   - Provide clear, descriptive names (snake_case recommended)
//   - Declare every accepted parameter in Parameters
//   - Return errors instead of panicking
//   - Be safe for concurrent use when one agent serves concurrent runs
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description of what this tool does.
	Description() string

	// Parameters returns the declared parameter schema.
	Parameters() Schema

	// Call executes the tool with named arguments. The result is stringified
	// before it is shown to the model.
	Call(ctx context.Context, args map[string]any) (any, error)
}

// Parameter declares a single named argument of a tool.
type Parameter struct {
	Type        string `json:"type" yaml:"type"`
	Required    bool   `json:"required" yaml:"required"`
	Description string `json:"description" yaml:"description"`
}

// Schema maps parameter names to their declaration.
type Schema map[string]Parameter

// Names returns the parameter names in a stable order: required parameters
// first, then optional ones, each group sorted alphabetically.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := s[names[i]].Required, s[names[j]].Required
		if ri != rj {
			return ri
		}
		return names[i] < names[j]
	})
	return names
}

// Error codes carried by ToolError.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeExecution  = "EXECUTION_ERROR"
)

// ToolError represents errors that occur during tool execution.
type ToolError struct {
	Tool    string `json:"tool"`    // Name of the tool that failed
	Message string `json:"message"` // Error message
	Code    string `json:"code"`    // Error code for categorization
	Err     error  `json:"-"`       // Underlying cause, if any
}

func (e *ToolError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *ToolError) Unwrap() error { return e.Err }

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{
		Tool:    tool,
		Message: message,
		Code:    code,
	}
}

// ValidationError represents parameter validation errors with detailed information.
type ValidationError struct {
	Field   string `json:"field"`   // Field that failed validation
	Value   any    `json:"value"`   // Value that was provided
	Message string `json:"message"` // Human-readable error message
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("argument '%s': %s", e.Field, e.Message)
}
