package model

import (
	"fmt"
	"sort"
	"strings"
)

// Provider tags the backend family a model identifier belongs to.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

// ID is one entry of the closed set of supported model variants.
type ID struct {
	Identifier string   `json:"identifier"`
	Provider   Provider `json:"provider"`
	reasoning  bool
}

// String returns the backend identifier.
func (id ID) String() string { return id.Identifier }

// IsReasoning reports whether the model belongs to the OpenAI reasoning
// families that only accept the default sampling temperature.
func (id ID) IsReasoning() bool { return id.reasoning }

var (
	// OpenAI - GPT
	GPT51    = ID{Identifier: "gpt-5.1", Provider: ProviderOpenAI, reasoning: true}
	GPT5     = ID{Identifier: "gpt-5", Provider: ProviderOpenAI, reasoning: true}
	GPT5Mini = ID{Identifier: "gpt-5-mini", Provider: ProviderOpenAI, reasoning: true}
	GPT5Nano = ID{Identifier: "gpt-5-nano", Provider: ProviderOpenAI, reasoning: true}

	// OpenAI - reasoning
	O4Mini = ID{Identifier: "o4-mini", Provider: ProviderOpenAI, reasoning: true}
	O3     = ID{Identifier: "o3", Provider: ProviderOpenAI, reasoning: true}
	O3Mini = ID{Identifier: "o3-mini", Provider: ProviderOpenAI, reasoning: true}
	O1     = ID{Identifier: "o1", Provider: ProviderOpenAI, reasoning: true}

	// Gemini
	Gemini3Pro    = ID{Identifier: "gemini-3-pro-preview", Provider: ProviderGemini}
	Gemini25Pro   = ID{Identifier: "gemini-2.5-pro", Provider: ProviderGemini}
	Gemini25Flash = ID{Identifier: "gemini-2.5-flash", Provider: ProviderGemini}
	Gemini20Flash = ID{Identifier: "gemini-2.0-flash", Provider: ProviderGemini}

	// Anthropic
	ClaudeSonnet = ID{Identifier: "claude-sonnet-4-20250514", Provider: ProviderAnthropic}
	ClaudeHaiku  = ID{Identifier: "claude-haiku-4-20250514", Provider: ProviderAnthropic}
)

// Default is the model used when none is configured.
var Default = GPT5Mini

var catalog = func() map[string]ID {
	ids := []ID{
		GPT51, GPT5, GPT5Mini, GPT5Nano,
		O4Mini, O3, O3Mini, O1,
		Gemini3Pro, Gemini25Pro, Gemini25Flash, Gemini20Flash,
		ClaudeSonnet, ClaudeHaiku,
	}
	m := make(map[string]ID, len(ids))
	for _, id := range ids {
		m[id.Identifier] = id
	}
	return m
}()

// Lookup resolves a model identifier against the catalog. Matching is case
// insensitive; unknown identifiers yield an error wrapping ErrUnknownModel.
func Lookup(identifier string) (ID, error) {
	id, ok := catalog[strings.ToLower(strings.TrimSpace(identifier))]
	if !ok {
		return ID{}, fmt.Errorf("%w: %q", ErrUnknownModel, identifier)
	}
	return id, nil
}

// Catalog returns every known model variant ordered by provider, then identifier.
func Catalog() []ID {
	out := make([]ID, 0, len(catalog))
	for _, id := range catalog {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Provider != out[j].Provider {
			return out[i].Provider < out[j].Provider
		}
		return out[i].Identifier < out[j].Identifier
	})
	return out
}

// ListModels returns all known models of a provider.
func ListModels(p Provider) []ID {
	var out []ID
	for _, id := range Catalog() {
		if id.Provider == p {
			out = append(out, id)
		}
	}
	return out
}
