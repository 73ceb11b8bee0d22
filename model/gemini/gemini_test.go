package gemini

import (
	"testing"

	"github.com/hupe1980/toolagent/core"
	"github.com/hupe1980/toolagent/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModel_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := NewModel()
	assert.ErrorIs(t, err, model.ErrMissingAPIKey)
}

func TestBuildParams_MergesSystemIntoHistory(t *testing.T) {
	m := &Model{opts: Options{Model: model.Gemini25Pro.Identifier}}

	params := m.buildParams(model.Request{
		Messages: []core.Message{
			core.NewSystemMessage("You are Travel Assistant."),
			core.NewUserMessage("weather in Paris?"),
			core.NewToolCallMessage("get_weather", "<tool_call>x</tool_call>"),
			core.NewToolResultMessage("get_weather", "rainy"),
			core.NewSystemMessage("No more tools."),
		},
		MaxTokens:   256,
		Temperature: 0.4,
	})

	assert.Equal(t, "gemini-2.5-pro", params.Model)
	require.NotNil(t, params.Temperature)
	assert.InDelta(t, 0.4, *params.Temperature, 1e-9)
	require.NotNil(t, params.MaxTokens)
	assert.Equal(t, 256, *params.MaxTokens)

	require.Len(t, params.Messages, 4)
	assert.Equal(t, "system", params.Messages[0].Role)
	assert.Equal(t, "You are Travel Assistant.\n\nNo more tools.", params.Messages[0].ContentString())
	assert.Equal(t, "user", params.Messages[1].Role)
	assert.Equal(t, "assistant", params.Messages[2].Role)
	assert.Equal(t, "user", params.Messages[3].Role)
	assert.Equal(t, "Tool result from get_weather:\nrainy", params.Messages[3].ContentString())
}

func TestBuildParams_NoSystem(t *testing.T) {
	m := &Model{opts: Options{Model: model.Gemini20Flash.Identifier}}
	params := m.buildParams(model.Request{Messages: []core.Message{core.NewUserMessage("hi")}})

	require.Len(t, params.Messages, 1)
	assert.Equal(t, "user", params.Messages[0].Role)
	assert.Nil(t, params.MaxTokens)
}

func TestInfo(t *testing.T) {
	m := &Model{opts: Options{Model: model.Gemini3Pro.Identifier}}
	assert.Equal(t, model.Info{Name: "gemini-3-pro-preview", Provider: model.ProviderGemini}, m.Info())
}
