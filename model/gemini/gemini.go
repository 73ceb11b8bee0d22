// Package gemini provides a model.Model backed by Google Gemini through
// github.com/mozilla-ai/any-llm-go.
//
// Gemini has no chat-level system turn in this adapter's contract: system
// messages are merged into one leading system message of the history and
// any-llm-go forwards it as the request's system instruction.
package gemini

import (
	"context"
	"fmt"
	"os"

	"github.com/hupe1980/toolagent/model"
	anyllmlib "github.com/mozilla-ai/any-llm-go"
	anyllmgemini "github.com/mozilla-ai/any-llm-go/providers/gemini"
)

// Options configures the Gemini adapter.
type Options struct {
	Model  string
	APIKey string
	// Extra is passed through to the any-llm-go provider constructor.
	Extra []anyllmlib.Option
}

// Model implements model.Model by wrapping an any-llm-go provider.
type Model struct {
	backend anyllmlib.Provider
	opts    Options
}

// NewModel creates a Gemini model. The API key falls back to GEMINI_API_KEY,
// then GOOGLE_API_KEY.
func NewModel(optFns ...func(o *Options)) (*Model, error) {
	opts := Options{Model: model.Gemini25Flash.Identifier}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.APIKey == "" {
		opts.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if opts.APIKey == "" {
		opts.APIKey = os.Getenv("GOOGLE_API_KEY")
	}
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w (set GEMINI_API_KEY or GOOGLE_API_KEY)", model.ErrMissingAPIKey)
	}

	backendOpts := append([]anyllmlib.Option{anyllmlib.WithAPIKey(opts.APIKey)}, opts.Extra...)
	backend, err := anyllmgemini.New(backendOpts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: create backend: %w", err)
	}

	return &Model{backend: backend, opts: opts}, nil
}

// Generate implements model.Model.
func (m *Model) Generate(ctx context.Context, req model.Request) (string, error) {
	resp, err := m.backend.Completion(ctx, m.buildParams(req))
	if err != nil {
		return "", model.NewGatewayError(model.ProviderGemini, m.opts.Model, err)
	}
	if len(resp.Choices) == 0 {
		return "", model.NewGatewayError(model.ProviderGemini, m.opts.Model, fmt.Errorf("empty choices in response"))
	}

	return resp.Choices[0].Message.ContentString(), nil
}

// buildParams converts a model.Request into any-llm CompletionParams.
func (m *Model) buildParams(req model.Request) anyllmlib.CompletionParams {
	system, turns := model.Turns(req.Messages)

	messages := make([]anyllmlib.Message, 0, len(turns)+1)
	if system != "" {
		messages = append(messages, anyllmlib.Message{Role: anyllmlib.RoleSystem, Content: system})
	}
	for _, t := range turns {
		messages = append(messages, anyllmlib.Message{Role: string(t.Role), Content: t.Text})
	}

	params := anyllmlib.CompletionParams{
		Model:    m.opts.Model,
		Messages: messages,
	}

	temperature := req.Temperature
	params.Temperature = &temperature
	if req.MaxTokens > 0 {
		maxTokens := req.MaxTokens
		params.MaxTokens = &maxTokens
	}
	return params
}

// Info returns metadata describing this Gemini model implementation.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.opts.Model, Provider: model.ProviderGemini}
}
