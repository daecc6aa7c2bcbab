package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for talking to a text-generation backend.
// Consumers send a single prompt and receive a structured JSON object.
type Provider interface {
	// Generate sends the prompt and returns the parsed JSON response.
	// The request's Schema field, when set, describes the JSON object the
	// response must conform to; providers with native structured output use
	// it directly, others validate the extracted JSON against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	// For providers that walk a candidate list it is the primary model.
	ModelID() string
}

// Request describes what to send to the backend.
type Request struct {
	// Prompt is the full instruction text. Single-turn: every call site in
	// this application embeds all context in one prompt.
	Prompt string

	// Schema is the JSON Schema the response must conform to. May be nil,
	// in which case the raw extracted JSON object is returned unvalidated.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness. Generation call sites use a higher
	// value than evaluation call sites.
	Temperature float64
}

// Schema defines the JSON structure expected from the backend.
type Schema struct {
	// Name identifies this schema (used as the structured-output name for
	// SDK backends and as the validation cache key). Kebab-case.
	Name string

	// Description is a human-readable summary sent to backends that accept
	// one alongside the schema.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the backend's output.
type Response struct {
	// Content is the extracted JSON object.
	Content json.RawMessage

	// Model is the model that actually served the request. With the
	// completion backend this may be an alternate rather than the primary.
	Model string

	// Usage reports token consumption when the backend provides it.
	Usage Usage
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
