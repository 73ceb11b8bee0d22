package core

// Role identifies the author of a Message within a conversation.
type Role string

const (
	// RoleUser marks input supplied by the human caller.
	RoleUser Role = "user"
	// RoleAssistant marks a final (or intermediate) model answer.
	RoleAssistant Role = "assistant"
	// RoleSystem marks a system prompt synthesized by the agent or supplied by the caller.
	RoleSystem Role = "system"
	// RoleToolCall marks a model turn that carried a tool-call directive.
	RoleToolCall Role = "tool_call"
	// RoleToolResult marks the textual outcome of executing a tool.
	RoleToolResult Role = "tool_result"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem, RoleToolCall, RoleToolResult:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string { return string(r) }

// Message is a single entry of a conversation history.
//
// Messages are plain values: they are copied, never mutated in place.
// ToolName is only set for RoleToolCall and RoleToolResult and records the
// tool that consumed or produced the message.
type Message struct {
	Role     Role   `json:"role" yaml:"role"`
	Content  string `json:"content" yaml:"content"`
	ToolName string `json:"tool_name,omitempty" yaml:"tool_name,omitempty"`
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// NewToolCallMessage records the raw model output that requested tool name.
func NewToolCallMessage(name, raw string) Message {
	return Message{Role: RoleToolCall, Content: raw, ToolName: name}
}

// NewToolResultMessage records the stringified result of executing tool name.
func NewToolResultMessage(name, result string) Message {
	return Message{Role: RoleToolResult, Content: result, ToolName: name}
}

// IsToolMessage reports whether the message belongs to the tool protocol.
func (m Message) IsToolMessage() bool {
	return m.Role == RoleToolCall || m.Role == RoleToolResult
}

// CloneMessages returns an independent copy of msgs. A nil input yields an
// empty, non-nil slice so callers can append without aliasing.
func CloneMessages(msgs []Message) []Message {
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

// WithoutRole returns a copy of msgs with every message of the given role removed.
// Relative order of the remaining messages is preserved.
func WithoutRole(msgs []Message, role Role) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == role {
			continue
		}
		out = append(out, m)
	}
	return out
}
