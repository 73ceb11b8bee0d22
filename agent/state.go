package agent

// State is a position in the agent loop state machine.
type State string

const (
	// StateAwaitingModel means a gateway call is due.
	StateAwaitingModel State = "awaiting_model"
	// StateToolCallDetected means the last reply carried a tool-call directive.
	StateToolCallDetected State = "tool_call_detected"
	// StateDone means the model answered in plain text.
	StateDone State = "done"
	// StateBudgetExhausted means the iteration budget was spent and a final
	// answer was forced.
	StateBudgetExhausted State = "budget_exhausted"
)

// String returns the state name.
func (s State) String() string { return string(s) }

// IsTerminal reports whether s ends a run.
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateBudgetExhausted
}
