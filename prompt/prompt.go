// Package prompt assembles the system prompt that introduces the agent and, when
// tools are registered, teaches the model the tool-call protocol.
//
// Templates are plain values. Two agents built with different Templates never
// share or mutate prompt state.
package prompt

import (
	"fmt"
	"strings"

	"github.com/hupe1980/toolagent/internal/util"
	"github.com/hupe1980/toolagent/tool"
	"github.com/hupe1980/toolagent/toolcall"
)

// DefaultCustomPrompt is used when an agent is configured without a custom prompt.
const DefaultCustomPrompt = "Your goal is to be as helpful as possible to the user."

const defaultSystem = `You are {{.AgentName}}. {{.AgentDescription}}

{{.CustomPrompt}}`

const defaultToolInstructions = `
You have access to the following tools that you MAY use when particularly relevant:

{{.ToolDescriptions}}

To call a tool, respond with EXACTLY this format:
` + toolcall.OpenTag + `
{"name": "tool_name", "parameters": {"param1": "value1", "param2": "value2"}}
` + toolcall.CloseTag + `

Important guidelines:
- Only use tools when they are specifically relevant and necessary to answer the user's question
- You can respond directly without using any tools if you already have sufficient information
- Only call ONE tool at a time and wait for its result before deciding the next step
- If you need more information from the user to use a tool effectively, ask them first
`

const defaultMaxIterations = `
You have reached the maximum number of tool calls for this conversation.
The conversation history contains all the tool results gathered so far.
Based on the information available, provide the best final answer you can to the user's question.
Do NOT attempt to call any more tools. Just synthesize the information you have and respond directly.
`

// Templates holds the text/template sources used to build prompts.
//
// System and ToolInstructions may reference .AgentName, .AgentDescription,
// .CustomPrompt and .ToolDescriptions. MaxIterations is the system message sent
// for the forced final call once the iteration budget is spent. Empty fields
// fall back to the built-in defaults.
type Templates struct {
	System           string `json:"system,omitempty" yaml:"system,omitempty"`
	ToolInstructions string `json:"tool_instructions,omitempty" yaml:"tool_instructions,omitempty"`
	MaxIterations    string `json:"max_iterations,omitempty" yaml:"max_iterations,omitempty"`
}

// Default returns the built-in templates.
func Default() Templates {
	return Templates{
		System:           defaultSystem,
		ToolInstructions: defaultToolInstructions,
		MaxIterations:    defaultMaxIterations,
	}
}

// WithDefaults fills empty fields from Default.
func (t Templates) WithDefaults() Templates {
	d := Default()
	if t.System == "" {
		t.System = d.System
	}
	if t.ToolInstructions == "" {
		t.ToolInstructions = d.ToolInstructions
	}
	if t.MaxIterations == "" {
		t.MaxIterations = d.MaxIterations
	}
	return t
}

// Validate parses every template without executing it.
func (t Templates) Validate() error {
	t = t.WithDefaults()
	probe := data{}
	for name, text := range map[string]string{
		"system":            t.System,
		"tool_instructions": t.ToolInstructions,
		"max_iterations":    t.MaxIterations,
	} {
		if _, err := util.RenderTemplate(name, text, probe); err != nil {
			return err
		}
	}
	return nil
}

// Identity describes who the agent is.
type Identity struct {
	AgentName        string
	AgentDescription string
	CustomPrompt     string
}

type data struct {
	AgentName        string
	AgentDescription string
	CustomPrompt     string
	ToolDescriptions string
}

// Build renders the system prompt for identity. The tool section is appended
// only when reg holds at least one tool.
func Build(tpl Templates, identity Identity, reg *tool.Registry) (string, error) {
	tpl = tpl.WithDefaults()

	d := data{
		AgentName:        identity.AgentName,
		AgentDescription: identity.AgentDescription,
		CustomPrompt:     identity.CustomPrompt,
	}
	if strings.TrimSpace(d.CustomPrompt) == "" {
		d.CustomPrompt = DefaultCustomPrompt
	}

	text, err := util.RenderTemplate("system", tpl.System, d)
	if err != nil {
		return "", err
	}

	if reg.Len() == 0 {
		return text, nil
	}

	d.ToolDescriptions = DescribeTools(reg.Tools())

	instructions, err := util.RenderTemplate("tool_instructions", tpl.ToolInstructions, d)
	if err != nil {
		return "", err
	}

	return text + "\n" + instructions, nil
}

// MaxIterations renders the system message for the forced final call.
func MaxIterations(tpl Templates, identity Identity) (string, error) {
	tpl = tpl.WithDefaults()
	return util.RenderTemplate("max_iterations", tpl.MaxIterations, data{
		AgentName:        identity.AgentName,
		AgentDescription: identity.AgentDescription,
		CustomPrompt:     identity.CustomPrompt,
	})
}

// DescribeTools renders the tool listing embedded in the tool instructions:
//
//	- get_weather: Get current weather conditions for any location
//	  Parameters:
//	    - location (string, required): The location to get weather for
func DescribeTools(tools []tool.Tool) string {
	var b strings.Builder
	for i, t := range tools {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s: %s\n", t.Name(), t.Description())

		params := t.Parameters()
		if len(params) == 0 {
			b.WriteString("  Parameters: none\n")
			continue
		}

		b.WriteString("  Parameters:\n")
		for _, name := range params.Names() {
			fmt.Fprintf(&b, "    - %s\n", DescribeParameter(name, params[name]))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// DescribeParameter renders one parameter as "name (type, required|optional): description".
func DescribeParameter(name string, p tool.Parameter) string {
	requirement := "optional"
	if p.Required {
		requirement = "required"
	}
	typ := p.Type
	if typ == "" {
		typ = "any"
	}
	return fmt.Sprintf("%s (%s, %s): %s", name, typ, requirement, p.Description)
}
