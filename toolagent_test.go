package toolagent

import (
	"context"
	"testing"

	"github.com/hupe1980/toolagent/config"
	"github.com/hupe1980/toolagent/core"
	"github.com/hupe1980/toolagent/model"
	"github.com/hupe1980/toolagent/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGateway(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	ids := append(model.ListModels(model.ProviderOpenAI), model.ListModels(model.ProviderAnthropic)...)
	for _, id := range ids {
		t.Run(id.Identifier, func(t *testing.T) {
			gw, err := NewGateway(id)
			require.NoError(t, err)
			assert.Equal(t, model.Info{Name: id.Identifier, Provider: id.Provider}, gw.Info())
		})
	}
}

func TestNewGateway_Errors(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewGatewayByName("gpt-5")
	assert.ErrorIs(t, err, model.ErrMissingAPIKey)

	_, err = NewGatewayByName("llama-3")
	assert.ErrorIs(t, err, model.ErrUnknownModel)

	_, err = NewGateway(model.ID{Identifier: "x", Provider: "ollama"})
	assert.ErrorIs(t, err, model.ErrUnsupportedProvider)
}

func TestNew_WithGatewayOverride(t *testing.T) {
	weather := tool.NewFunctionTool("get_weather", "Weather", tool.Schema{
		"location": {Type: "string", Required: true},
	}, func(context.Context, map[string]any) (any, error) {
		return "Weather in Tokyo: 72°F, sunny", nil
	})

	cfg := config.Default()
	cfg.Agent.Name = "Travel Assistant"
	cfg.Agent.MaxIterations = 2

	gw := model.NewMockModel(`<tool_call>{"name":"get_weather","parameters":{"location":"Tokyo"}}</tool_call>`, "Sunny.")
	a, err := New(cfg, func(o *Options) {
		o.Tools = []tool.Tool{weather}
		o.Gateway = gw
	})
	require.NoError(t, err)
	assert.Equal(t, 2, a.Config().MaxIterations)

	msg, err := a.Run(context.Background(), []core.Message{core.NewUserMessage("What's the weather in Tokyo?")})
	require.NoError(t, err)
	assert.Equal(t, "Sunny.", msg.Content)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Model = "unknown-model"

	_, err := New(cfg)
	assert.ErrorIs(t, err, model.ErrUnknownModel)

	cfg = config.Default()
	cfg.Agent.Temperature = 3

	_, err = New(cfg, func(o *Options) { o.Gateway = model.NewMockModel("x") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temperature")
}

func TestNew_CustomModelWithGateway(t *testing.T) {
	cfg := config.Default()
	cfg.Model = "llama3.1:8b"

	a, err := New(cfg, func(o *Options) { o.Gateway = model.NewMockModel("Hi there.") })
	require.NoError(t, err)

	msg, err := a.Run(context.Background(), []core.Message{core.NewUserMessage("hello")})
	require.NoError(t, err)
	assert.Equal(t, "Hi there.", msg.Content)
}

func TestNew_MissingCredentials(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg := config.Default()
	cfg.Model = model.ClaudeHaiku.Identifier

	_, err := New(cfg)
	assert.ErrorIs(t, err, model.ErrMissingAPIKey)
}
