package testutil

import (
	"github.com/hupe1980/toolagent/core"
	"github.com/hupe1980/toolagent/toolcall"
)

// HistoryBuilder provides a fluent helper for constructing message histories in tests.
// Example:
//
//	h := NewHistory().User("weather?").ToolCall("get_weather", map[string]any{"location": "Tokyo"}).ToolResult("get_weather", "sunny").Build()
//
// Chain only the turns you need; order is preserved.
type HistoryBuilder struct {
	msgs []core.Message
}

// NewHistory creates an empty builder.
func NewHistory() *HistoryBuilder { return &HistoryBuilder{} }

// System appends a system message (chainable).
func (b *HistoryBuilder) System(t string) *HistoryBuilder {
	b.msgs = append(b.msgs, core.NewSystemMessage(t))
	return b
}

// User appends a user message (chainable).
func (b *HistoryBuilder) User(t string) *HistoryBuilder {
	b.msgs = append(b.msgs, core.NewUserMessage(t))
	return b
}

// Assistant appends an assistant message (chainable).
func (b *HistoryBuilder) Assistant(t string) *HistoryBuilder {
	b.msgs = append(b.msgs, core.NewAssistantMessage(t))
	return b
}

// ToolCall appends a tool_call message whose content is the rendered directive (chainable).
func (b *HistoryBuilder) ToolCall(name string, params map[string]any) *HistoryBuilder {
	b.msgs = append(b.msgs, core.NewToolCallMessage(name, Directive(name, params)))
	return b
}

// ToolResult appends a tool_result message (chainable).
func (b *HistoryBuilder) ToolResult(name, result string) *HistoryBuilder {
	b.msgs = append(b.msgs, core.NewToolResultMessage(name, result))
	return b
}

// Build returns a copy of the accumulated history.
func (b *HistoryBuilder) Build() []core.Message {
	return core.CloneMessages(b.msgs)
}

// Directive renders a tool-call directive as a model would emit it.
func Directive(name string, params map[string]any) string {
	return toolcall.Format(toolcall.Request{Name: name, Parameters: params})
}
