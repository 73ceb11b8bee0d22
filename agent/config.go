package agent

import (
	"errors"
	"fmt"

	"github.com/hupe1980/toolagent/prompt"
)

// Config is the immutable configuration of an Agent.
type Config struct {
	AgentName          string
	AgentDescription   string
	CustomSystemPrompt string
	MaxIterations      int
	MaxTokens          int
	Temperature        float64
	Templates          prompt.Templates
}

// DefaultConfig returns the baseline configuration: 10 iterations, 4096
// tokens, temperature 0.4 and the built-in prompt templates.
func DefaultConfig() Config {
	return Config{
		AgentName:          "Assistant",
		AgentDescription:   "A helpful AI assistant.",
		CustomSystemPrompt: prompt.DefaultCustomPrompt,
		MaxIterations:      10,
		MaxTokens:          4096,
		Temperature:        0.4,
		Templates:          prompt.Default(),
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("max_iterations must be at least 1, got %d", c.MaxIterations))
	}
	if c.MaxTokens < 1 {
		errs = append(errs, fmt.Errorf("max_tokens must be at least 1, got %d", c.MaxTokens))
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		errs = append(errs, fmt.Errorf("temperature %.2f is out of range [0, 2]", c.Temperature))
	}
	if err := c.Templates.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("templates: %w", err))
	}
	return errors.Join(errs...)
}

func (c Config) identity() prompt.Identity {
	return prompt.Identity{
		AgentName:        c.AgentName,
		AgentDescription: c.AgentDescription,
		CustomPrompt:     c.CustomSystemPrompt,
	}
}
