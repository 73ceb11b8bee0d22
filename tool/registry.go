package tool

import (
	"fmt"
)

// Registry is the immutable set of tools an agent can dispatch to.
//
// It is populated once by NewRegistry and never mutated afterwards, which
// makes it safe to share across concurrent runs. A nil *Registry behaves as
// an empty registry.
type Registry struct {
	tools []Tool
	index map[string]Tool
}

// NewRegistry builds a registry from tools in the given order. Nil tools,
// empty names and duplicate names are rejected.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{
		tools: make([]Tool, 0, len(tools)),
		index: make(map[string]Tool, len(tools)),
	}

	for i, t := range tools {
		if t == nil {
			return nil, fmt.Errorf("tool #%d is nil", i)
		}
		name := t.Name()
		if name == "" {
			return nil, fmt.Errorf("tool #%d has an empty name", i)
		}
		if _, exists := r.index[name]; exists {
			return nil, fmt.Errorf("tool %q already registered", name)
		}
		r.index[name] = t
		r.tools = append(r.tools, t)
	}

	return r, nil
}

// Lookup retrieves a tool by name. The boolean is false when no tool with
// that name is registered.
func (r *Registry) Lookup(name string) (Tool, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.index[name]
	return t, ok
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	if r == nil {
		return nil
	}
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.tools))
	for i, t := range r.tools {
		names[i] = t.Name()
	}
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.tools)
}
