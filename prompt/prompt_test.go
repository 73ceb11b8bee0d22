package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/hupe1980/toolagent/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherTool() tool.Tool {
	return tool.NewFunctionTool("get_weather", "Get current weather conditions for any location", tool.Schema{
		"location": {Type: "string", Required: true, Description: "The location to get weather for"},
		"unit":     {Type: "string", Description: "celsius or fahrenheit"},
	}, func(context.Context, map[string]any) (any, error) { return "", nil })
}

var travel = Identity{
	AgentName:        "Travel Assistant",
	AgentDescription: "A helpful travel planning assistant.",
	CustomPrompt:     "Be brief.",
}

func TestBuild_NoTools(t *testing.T) {
	text, err := Build(Default(), travel, nil)
	require.NoError(t, err)
	assert.Equal(t, "You are Travel Assistant. A helpful travel planning assistant.\n\nBe brief.", text)
	assert.NotContains(t, text, "<tool_call>")
}

func TestBuild_DefaultCustomPrompt(t *testing.T) {
	text, err := Build(Default(), Identity{AgentName: "Bot", AgentDescription: "Helps."}, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(text, DefaultCustomPrompt))
}

func TestBuild_WithTools(t *testing.T) {
	noArgs := tool.NewFunctionTool("now", "Current time", nil, func(context.Context, map[string]any) (any, error) { return "", nil })
	reg, err := tool.NewRegistry(weatherTool(), noArgs)
	require.NoError(t, err)

	text, err := Build(Default(), travel, reg)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "You are Travel Assistant."))
	assert.Contains(t, text, "- get_weather: Get current weather conditions for any location\n  Parameters:\n    - location (string, required): The location to get weather for\n    - unit (string, optional): celsius or fahrenheit")
	assert.Contains(t, text, "- now: Current time\n  Parameters: none")
	assert.Contains(t, text, "<tool_call>\n{\"name\": \"tool_name\", \"parameters\": {\"param1\": \"value1\", \"param2\": \"value2\"}}\n</tool_call>")
	assert.Less(t, strings.Index(text, "get_weather"), strings.Index(text, "- now"))
}

func TestBuild_CustomTemplates(t *testing.T) {
	reg, err := tool.NewRegistry(weatherTool())
	require.NoError(t, err)

	tpl := Templates{
		System:           "I am {{.AgentName | upper}}.",
		ToolInstructions: "Tools:\n{{.ToolDescriptions}}",
	}
	text, err := Build(tpl, travel, reg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "I am TRAVEL ASSISTANT.\nTools:\n- get_weather"))

	// The default templates are untouched by a custom set.
	assert.Equal(t, defaultSystem, Default().System)
}

func TestBuild_TemplateError(t *testing.T) {
	_, err := Build(Templates{System: "{{.Unknown}}"}, travel, nil)
	assert.Error(t, err)

	assert.Error(t, Templates{ToolInstructions: "{{ .ToolDescriptions"}.Validate())
	assert.NoError(t, Default().Validate())
}

func TestMaxIterations(t *testing.T) {
	text, err := MaxIterations(Default(), travel)
	require.NoError(t, err)
	assert.Contains(t, text, "Do NOT attempt to call any more tools.")

	text, err = MaxIterations(Templates{MaxIterations: "{{.AgentName}} is out of tool calls."}, travel)
	require.NoError(t, err)
	assert.Equal(t, "Travel Assistant is out of tool calls.", text)
}

func TestDescribeParameter(t *testing.T) {
	assert.Equal(t, "amount (number, required): The amount to convert",
		DescribeParameter("amount", tool.Parameter{Type: "number", Required: true, Description: "The amount to convert"}))
	assert.Equal(t, "x (any, optional): ", DescribeParameter("x", tool.Parameter{}))
}
