// Package toolagent wires the pieces of a tool-calling agent together: it
// resolves a catalog model to a provider gateway and builds an agent.Agent
// from a config.Config.
//
// Most applications:
//  1. Load a configuration (config.Load or config.Default)
//  2. Call New with their tools
//  3. Call Run with a fresh message history per conversation
//
// Gateways are resolved through a lookup table keyed by provider, so adding a
// backend never touches the agent loop.
package toolagent

import (
	"fmt"

	"github.com/hupe1980/toolagent/agent"
	"github.com/hupe1980/toolagent/config"
	"github.com/hupe1980/toolagent/logging"
	"github.com/hupe1980/toolagent/model"
	"github.com/hupe1980/toolagent/model/anthropic"
	"github.com/hupe1980/toolagent/model/gemini"
	"github.com/hupe1980/toolagent/model/openai"
	"github.com/hupe1980/toolagent/observe"
	"github.com/hupe1980/toolagent/tool"
)

// GatewayFactory creates the gateway for a catalog model. API keys are read
// from the provider's environment variable.
type GatewayFactory func(id model.ID) (model.Model, error)

var gateways = map[model.Provider]GatewayFactory{
	model.ProviderOpenAI: func(id model.ID) (model.Model, error) {
		m, err := openai.NewModel(func(o *openai.Options) { o.Model = id.Identifier })
		if err != nil {
			return nil, err
		}
		return m, nil
	},
	model.ProviderAnthropic: func(id model.ID) (model.Model, error) {
		m, err := anthropic.NewModel(func(o *anthropic.Options) { o.Model = id.Identifier })
		if err != nil {
			return nil, err
		}
		return m, nil
	},
	model.ProviderGemini: func(id model.ID) (model.Model, error) {
		m, err := gemini.NewModel(func(o *gemini.Options) { o.Model = id.Identifier })
		if err != nil {
			return nil, err
		}
		return m, nil
	},
}

// NewGateway returns the gateway serving id. Unsupported providers and
// missing credentials are configuration errors.
func NewGateway(id model.ID) (model.Model, error) {
	factory, ok := gateways[id.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnsupportedProvider, id.Provider)
	}
	return factory(id)
}

// NewGatewayByName resolves identifier against the catalog and returns its gateway.
func NewGatewayByName(identifier string) (model.Model, error) {
	id, err := model.Lookup(identifier)
	if err != nil {
		return nil, err
	}
	return NewGateway(id)
}

// Options configures New.
type Options struct {
	Tools   []tool.Tool
	Logger  logging.Logger
	Metrics *observe.Metrics
	// Gateway overrides the gateway resolved from the configured model.
	Gateway model.Model
}

// New builds an agent from cfg. A nil cfg means config.Default().
//
// Example:
//
//	cfg, _ := config.Load("agent.yaml")
//	a, err := toolagent.New(cfg, func(o *toolagent.Options) {
//	  o.Tools = travel.Tools(nil)
//	})
func New(cfg *config.Config, optFns ...func(o *Options)) (*agent.Agent, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	validate := config.Validate
	if opts.Gateway != nil {
		validate = config.ValidateSettings
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("toolagent: %w", err)
	}

	gateway := opts.Gateway
	if gateway == nil {
		id, err := cfg.ModelID()
		if err != nil {
			return nil, fmt.Errorf("toolagent: %w", err)
		}
		if gateway, err = NewGateway(id); err != nil {
			return nil, fmt.Errorf("toolagent: %w", err)
		}
	}

	return agent.New(gateway, func(o *agent.Options) {
		o.Config = cfg.AgentConfig()
		o.Tools = opts.Tools
		if opts.Logger != nil {
			o.Logger = opts.Logger
		}
		if opts.Metrics != nil {
			o.Metrics = opts.Metrics
		}
	})
}
