package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/toolagent/logging"
	"github.com/hupe1980/toolagent/model"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path and returns a validated [Config].
// It is a convenience wrapper around [LoadFromReader].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r on top of [Default] and
// validates the result. Unknown keys are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values and names a
// catalog model. It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if _, err := model.Lookup(cfg.Model); err != nil {
		errs = append(errs, fmt.Errorf("model: %w", err))
	}

	return errors.Join(append(errs, ValidateSettings(cfg))...)
}

// ValidateSettings is Validate without the model catalog lookup. It is used
// when the caller supplies its own gateway.
func ValidateSettings(cfg *Config) error {
	var errs []error

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q is invalid; valid values: debug, info, warn, error", cfg.Log.Level))
	}
	if cfg.Log.Format != "" && cfg.Log.Format != "json" && cfg.Log.Format != "text" {
		errs = append(errs, fmt.Errorf("log.format %q is invalid; valid values: json, text", cfg.Log.Format))
	}

	if cfg.Agent.Name == "" {
		errs = append(errs, errors.New("agent.name is required"))
	}
	if err := cfg.AgentConfig().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("agent: %w", err))
	}

	return errors.Join(errs...)
}
