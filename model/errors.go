package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownModel is returned when a model identifier is not in the catalog.
	ErrUnknownModel = errors.New("unknown model")

	// ErrUnsupportedProvider is returned when no gateway is registered for a provider tag.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrMissingAPIKey is returned when a gateway cannot find credentials.
	ErrMissingAPIKey = errors.New("missing api key")
)

// GatewayError wraps a failure reported by a provider backend.
type GatewayError struct {
	Provider Provider `json:"provider"`
	Model    string   `json:"model"`
	Err      error    `json:"-"`
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s api error (model %s): %v", e.Provider, e.Model, e.Err)
}

// Unwrap exposes the underlying transport/provider error.
func (e *GatewayError) Unwrap() error { return e.Err }

// NewGatewayError creates a GatewayError.
func NewGatewayError(p Provider, model string, err error) *GatewayError {
	return &GatewayError{Provider: p, Model: model, Err: err}
}
