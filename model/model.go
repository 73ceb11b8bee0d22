package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/toolagent/core"
)

// Request captures everything a gateway needs to produce the next model turn.
type Request struct {
	Messages    []core.Message `json:"messages"`
	MaxTokens   int            `json:"max_tokens"`
	Temperature float64        `json:"temperature"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string   `json:"name"`
	Provider Provider `json:"provider"`
}

// Model is the boundary the agent loop calls to obtain the next model turn.
//
// Implementations translate the ordered history into their backend's native
// request format (see Turns), must preserve message order and return the
// generated text verbatim. Transport, authentication and rate-limit failures
// are returned as errors; the caller does not retry.
type Model interface {
	Generate(ctx context.Context, req Request) (string, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a scripted in-memory Model useful for tests & examples.
//
// Replies are returned in order; once the script is exhausted the last reply
// repeats. Every request is recorded (deep-copied) for later inspection.
type MockModel struct {
	mu       sync.Mutex
	info     Info
	replies  []string
	errs     map[int]error
	requests []Request
}

// NewMockModel constructs a MockModel that answers with the given replies.
func NewMockModel(replies ...string) *MockModel {
	return &MockModel{
		info:    Info{Name: "mock", Provider: "mock"},
		replies: replies,
		errs:    make(map[int]error),
	}
}

// AddReply appends a canned completion to the script.
func (m *MockModel) AddReply(reply string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, reply)
}

// FailOn makes the call with the given zero-based index return err.
func (m *MockModel) FailOn(call int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[call] = err
}

// Generate implements Model.
func (m *MockModel) Generate(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := len(m.requests)
	m.requests = append(m.requests, Request{
		Messages:    core.CloneMessages(req.Messages),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := m.errs[idx]; ok {
		return "", err
	}
	if len(m.replies) == 0 {
		return "", fmt.Errorf("mock model: no replies scripted")
	}
	if idx >= len(m.replies) {
		return m.replies[len(m.replies)-1], nil
	}
	return m.replies[idx], nil
}

// Requests returns a snapshot of every request received so far.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Calls returns the number of Generate invocations.
func (m *MockModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Info implements Model interface.
func (m *MockModel) Info() Info { return m.info }
