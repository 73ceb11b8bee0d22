package model

import (
	"strings"

	"github.com/hupe1980/toolagent/core"
)

// ToolResultPrefix precedes tool output when it is rendered as a user turn.
const ToolResultPrefix = "Tool result from "

// TurnRole is the two-party role understood by every backend.
type TurnRole string

const (
	TurnUser      TurnRole = "user"
	TurnAssistant TurnRole = "assistant"
)

// Turn is a provider-neutral chat turn produced by Turns.
type Turn struct {
	Role TurnRole
	Text string
}

// ToolResultText renders a tool_result message the way it is shown to a model:
//
//	Tool result from <tool_name>:
//	<content>
func ToolResultText(m core.Message) string {
	return ToolResultPrefix + m.ToolName + ":\n" + m.Content
}

// Turns maps a conversation onto user/assistant turns.
//
// User and assistant messages pass through, tool_call messages become
// assistant turns and tool_result messages become user turns rendered with
// ToolResultText. System messages are not part of the turn list; their
// contents are joined (blank-line separated, in order) and returned as system.
// Order of the non-system messages is preserved.
func Turns(msgs []core.Message) (system string, turns []Turn) {
	var sys []string
	turns = make([]Turn, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case core.RoleSystem:
			sys = append(sys, m.Content)
		case core.RoleAssistant, core.RoleToolCall:
			turns = append(turns, Turn{Role: TurnAssistant, Text: m.Content})
		case core.RoleToolResult:
			turns = append(turns, Turn{Role: TurnUser, Text: ToolResultText(m)})
		default:
			turns = append(turns, Turn{Role: TurnUser, Text: m.Content})
		}
	}
	return strings.Join(sys, "\n\n"), turns
}
