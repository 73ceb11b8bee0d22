// Package logging provides a minimal logging interface and adapters.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the agent loop uses for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	a, err := agent.New(gateway, func(o *agent.Options) { o.Logger = logger })
//
// The interface stays minimal to avoid vendor lock-in while supporting
// structured logging where available.
package logging
