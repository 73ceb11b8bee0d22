// Package anthropic provides a model wrapper for the Anthropic Claude API.
package anthropic

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/hupe1980/toolagent/model"
)

// Options configures the Anthropic model adapter (model id, API key, base URL).
// Generation parameters travel with every model.Request.
type Options struct {
	Model   string
	APIKey  string
	BaseURL string
}

// Model wraps the Anthropic Messages API behind the generic model.Model interface.
type Model struct {
	client *anthropic.Client
	opts   Options
}

// NewModel creates a new Anthropic model using the official client. The API
// key falls back to ANTHROPIC_API_KEY.
func NewModel(optFns ...func(o *Options)) (*Model, error) {
	opts := defaultOptions(optFns...)
	if opts.APIKey == "" {
		opts.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if opts.APIKey == "" {
		return nil, fmt.Errorf("anthropic: %w (set ANTHROPIC_API_KEY)", model.ErrMissingAPIKey)
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Model{
		client: &client,
		opts:   opts,
	}, nil
}

// NewModelFromClient creates a new Anthropic model from an existing client
func NewModelFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Model {
	return &Model{
		client: client,
		opts:   defaultOptions(optFns...),
	}
}

func defaultOptions(optFns ...func(o *Options)) Options {
	opts := Options{Model: model.ClaudeSonnet.Identifier}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// Generate implements model.Model. System messages are lifted into the
// dedicated System parameter; the remaining turns keep their order.
func (m *Model) Generate(ctx context.Context, req model.Request) (string, error) {
	system, turns := model.Turns(req.Messages)

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(m.opts.Model),
		Messages:    buildMessages(turns),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return "", model.NewGatewayError(model.ProviderAnthropic, m.opts.Model, err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}

// buildMessages converts turns to Anthropic messages. Consecutive turns of the
// same role are merged into one message with several text blocks because the
// Messages API expects alternating roles.
func buildMessages(turns []model.Turn) []anthropic.MessageParam {
	var messages []anthropic.MessageParam

	var (
		blocks []anthropic.ContentBlockParamUnion
		role   model.TurnRole
	)
	flush := func() {
		if len(blocks) == 0 {
			return
		}
		if role == model.TurnAssistant {
			messages = append(messages, anthropic.NewAssistantMessage(blocks...))
		} else {
			messages = append(messages, anthropic.NewUserMessage(blocks...))
		}
		blocks = nil
	}

	for _, t := range turns {
		if t.Text == "" {
			continue
		}
		if t.Role != role {
			flush()
			role = t.Role
		}
		blocks = append(blocks, anthropic.NewTextBlock(t.Text))
	}
	flush()

	return messages
}

// Info returns metadata describing this Anthropic model implementation.
func (m *Model) Info() model.Info {
	return model.Info{
		Name:     m.opts.Model,
		Provider: model.ProviderAnthropic,
	}
}
