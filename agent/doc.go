// Package agent contains the tool-calling agent loop.
//
// An Agent sends a conversation to a model gateway, scans the reply for a
// <tool_call> directive, executes the named tool and feeds the result back,
// repeating until the model answers in plain text or the iteration budget is
// spent. Three collaborators are wired together:
//
//  1. prompt.Build renders the system prompt once per run
//  2. toolcall.Parse decides whether a reply is a directive or an answer
//  3. Invoker dispatches directives against the tool registry
//
// Execution model:
//   - One run is strictly sequential: a tool result is observed before the next
//     model call is issued
//   - Tool failures never escape a run; they become tool_result messages the
//     model can react to
//   - Gateway failures abort the run and are returned to the caller
//   - The caller's history is copied, never mutated
//
// An Agent holds no per-run state, so one instance may serve concurrent runs
// as long as its gateway and tools are safe for concurrent use.
package agent
