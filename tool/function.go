package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Func is the signature of a plain Go function exposed as a tool.
type Func func(ctx context.Context, args map[string]any) (any, error)

// FunctionTool is a generic adapter that exposes a plain Go function as a tool.
//
// Arguments are validated against the declared schema before the function
// runs. Failures are normalized into *ToolError:
//
//	VALIDATION_ERROR  -> missing, unexpected or mistyped argument
//	EXECUTION_ERROR   -> the function returned a (non-ToolError) error
//
// A *ToolError returned by the function is forwarded unchanged. A
// FunctionTool has no mutable state and is safe for concurrent use.
type FunctionTool struct {
	name        string
	description string
	parameters  Schema
	fn          Func
}

// NewFunctionTool constructs a FunctionTool from explicit schema and function.
//
// Example:
//
//	weather := NewFunctionTool(
//	  "get_weather",
//	  "Get current weather conditions for any location",
//	  Schema{"location": {Type: "string", Required: true, Description: "The location to get weather for"}},
//	  func(ctx context.Context, args map[string]any) (any, error) {
//	    return "Weather in " + args["location"].(string) + ": 72°F, sunny", nil
//	  },
//	)
func NewFunctionTool(name, description string, parameters Schema, fn Func) *FunctionTool {
	if parameters == nil {
		parameters = Schema{}
	}
	return &FunctionTool{
		name:        name,
		description: description,
		parameters:  parameters,
		fn:          fn,
	}
}

// NewTypedTool exposes a function taking a typed argument struct. The schema
// is derived from T (see SchemaFromStruct) and the validated argument mapping
// is decoded into T through its JSON representation.
//
// Example:
//
//	type FlightArgs struct {
//	  Origin      string `json:"origin" description:"The departure location"`
//	  Destination string `json:"destination" description:"The arrival location"`
//	}
//
//	flights := NewTypedTool("get_flight_prices", "Get flight prices", func(ctx context.Context, a FlightArgs) (any, error) {
//	  return lookup(a.Origin, a.Destination)
//	})
func NewTypedTool[T any](name, description string, fn func(ctx context.Context, args T) (any, error)) *FunctionTool {
	var zero T
	return NewFunctionTool(name, description, SchemaFromStruct(zero), func(ctx context.Context, args map[string]any) (any, error) {
		var typed T
		raw, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("encode arguments: %w", err)
		}
		if err := json.Unmarshal(raw, &typed); err != nil {
			return nil, fmt.Errorf("decode arguments: %w", err)
		}
		return fn(ctx, typed)
	})
}

// Name returns the unique tool name used in tool-call directives.
func (t *FunctionTool) Name() string { return t.name }

// Description returns the short natural language description exposed to models.
func (t *FunctionTool) Description() string { return t.description }

// Parameters returns the declared parameter schema.
func (t *FunctionTool) Parameters() Schema { return t.parameters }

// Call validates the provided args against the declared schema then invokes the
// underlying function.
func (t *FunctionTool) Call(ctx context.Context, args map[string]any) (any, error) {
	if args == nil {
		args = map[string]any{}
	}

	if err := ValidateArguments(args, t.parameters); err != nil {
		return nil, &ToolError{
			Tool:    t.name,
			Message: err.Error(),
			Code:    CodeValidation,
			Err:     err,
		}
	}

	result, err := t.fn(ctx, args)
	if err != nil {
		var toolErr *ToolError
		if errors.As(err, &toolErr) {
			return nil, toolErr
		}

		return nil, &ToolError{
			Tool:    t.name,
			Message: err.Error(),
			Code:    CodeExecution,
			Err:     err,
		}
	}

	return result, nil
}
