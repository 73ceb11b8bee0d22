// Package openai provides an implementation of model.Model using the OpenAI
// Chat Completions API. It maps the agent's conversation history onto the
// SDK's message format (system messages travel as native system turns) and
// returns the generated text.
package openai

import (
	"context"
	"fmt"
	"os"

	"github.com/hupe1980/toolagent/core"
	"github.com/hupe1980/toolagent/model"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Options configure the OpenAI model adapter.
type Options struct {
	Model   string
	APIKey  string
	BaseURL string
	// OmitTemperature drops the temperature parameter. Reasoning models only
	// accept the default; it is set automatically for catalog entries that
	// report IsReasoning.
	OmitTemperature bool
}

// Model wraps the OpenAI Chat Completions API behind the generic model.Model interface.
type Model struct {
	client *openai.Client
	opts   Options
}

// NewModel creates a new OpenAI model using the official client. The API key
// falls back to OPENAI_API_KEY; when neither is set model.ErrMissingAPIKey is returned.
func NewModel(optFns ...func(o *Options)) (*Model, error) {
	opts := defaultOptions(optFns...)
	if opts.APIKey == "" {
		opts.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if opts.APIKey == "" {
		return nil, fmt.Errorf("openai: %w (set OPENAI_API_KEY)", model.ErrMissingAPIKey)
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}
	client := openai.NewClient(clientOpts...)

	return &Model{client: &client, opts: opts}, nil
}

// NewModelFromClient creates a new OpenAI model from an existing client.
func NewModelFromClient(client *openai.Client, optFns ...func(o *Options)) *Model {
	return &Model{client: client, opts: defaultOptions(optFns...)}
}

func defaultOptions(optFns ...func(o *Options)) Options {
	opts := Options{Model: model.GPT5Mini.Identifier}
	for _, fn := range optFns {
		fn(&opts)
	}
	if id, err := model.Lookup(opts.Model); err == nil && id.IsReasoning() {
		opts.OmitTemperature = true
	}
	return opts
}

// Generate implements model.Model.
func (m *Model) Generate(ctx context.Context, req model.Request) (string, error) {
	params := m.buildParams(req)

	resp, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", model.NewGatewayError(model.ProviderOpenAI, m.opts.Model, err)
	}
	if len(resp.Choices) == 0 {
		return "", model.NewGatewayError(model.ProviderOpenAI, m.opts.Model, fmt.Errorf("no choices returned"))
	}

	// Reasoning models may spend the whole token budget before producing
	// text. An empty reply is still a reply.
	return resp.Choices[0].Message.Content, nil
}

// buildParams assembles the OpenAI request parameters.
func (m *Model) buildParams(req model.Request) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Messages: buildMessages(req.Messages),
		Model:    m.opts.Model,
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}
	if !m.opts.OmitTemperature {
		params.Temperature = openai.Float(req.Temperature)
	}
	return params
}

// buildMessages converts the conversation into OpenAI chat messages. System
// messages keep their position; every other role follows model.Turns semantics.
func buildMessages(msgs []core.Message) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, msg := range msgs {
		switch msg.Role {
		case core.RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		case core.RoleAssistant, core.RoleToolCall:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		case core.RoleToolResult:
			messages = append(messages, openai.UserMessage(model.ToolResultText(msg)))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}
	return messages
}

// Info returns metadata describing this OpenAI model implementation.
func (m *Model) Info() model.Info {
	return model.Info{
		Name:     m.opts.Model,
		Provider: model.ProviderOpenAI,
	}
}
