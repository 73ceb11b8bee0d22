// Package config defines the YAML configuration of an agent deployment:
// identity and loop limits, the model to talk to, logging and telemetry.
package config

import (
	"io"

	"github.com/hupe1980/toolagent/agent"
	"github.com/hupe1980/toolagent/logging"
	"github.com/hupe1980/toolagent/model"
	"github.com/hupe1980/toolagent/prompt"
)

// Config is the top-level configuration document.
type Config struct {
	Agent     AgentConfig      `yaml:"agent"`
	Model     string           `yaml:"model"`
	Log       LogConfig        `yaml:"log"`
	Prompts   prompt.Templates `yaml:"prompts"`
	Telemetry TelemetryConfig  `yaml:"telemetry"`
}

// AgentConfig holds the identity and loop limits of the agent.
type AgentConfig struct {
	Name               string  `yaml:"name"`
	Description        string  `yaml:"description"`
	CustomSystemPrompt string  `yaml:"custom_system_prompt"`
	MaxIterations      int     `yaml:"max_iterations"`
	MaxTokens          int     `yaml:"max_tokens"`
	Temperature        float64 `yaml:"temperature"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Default: info.
	Level string `yaml:"level"`
	// Format is json or text. Default: json.
	Format string `yaml:"format"`
}

// TelemetryConfig controls the metrics endpoint.
type TelemetryConfig struct {
	// MetricsAddr is the listen address of the Prometheus /metrics endpoint.
	// Empty disables it.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns a configuration populated with the agent defaults and the
// default model.
func Default() *Config {
	d := agent.DefaultConfig()
	return &Config{
		Agent: AgentConfig{
			Name:               d.AgentName,
			Description:        d.AgentDescription,
			CustomSystemPrompt: d.CustomSystemPrompt,
			MaxIterations:      d.MaxIterations,
			MaxTokens:          d.MaxTokens,
			Temperature:        d.Temperature,
		},
		Model: model.Default.String(),
		Log:   LogConfig{Level: "info", Format: "json"},
	}
}

// AgentConfig converts the document into an agent.Config.
func (c *Config) AgentConfig() agent.Config {
	return agent.Config{
		AgentName:          c.Agent.Name,
		AgentDescription:   c.Agent.Description,
		CustomSystemPrompt: c.Agent.CustomSystemPrompt,
		MaxIterations:      c.Agent.MaxIterations,
		MaxTokens:          c.Agent.MaxTokens,
		Temperature:        c.Agent.Temperature,
		Templates:          c.Prompts.WithDefaults(),
	}
}

// ModelID resolves Model against the catalog.
func (c *Config) ModelID() (model.ID, error) {
	return model.Lookup(c.Model)
}

// NewLogger builds the logger described by Log, writing to w.
func (c *Config) NewLogger(w io.Writer) (logging.Logger, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	return logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    c.Log.Format,
		Output:    w,
		Component: "toolagent",
	}), nil
}
