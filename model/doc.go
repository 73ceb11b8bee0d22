// Package model defines the provider‑agnostic gateway abstraction the agent
// loop uses to obtain model turns, plus the closed catalog of supported model
// identifiers.
//
// Core goals:
//   - Keep the loop independent of vendor SDKs (Model interface)
//   - Resolve model identifiers to provider tags through a lookup table (Lookup)
//   - Share the role-mapping contract between providers (Turns, ToolResultText)
//   - Facilitate lightweight scripting for tests (MockModel)
//
// Providers (OpenAI, Anthropic, Gemini) live in sub-packages and implement
// Model so higher layers remain decoupled from their wire formats.
package model
