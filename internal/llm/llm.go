// Package llm sends single-turn prompts to a hosted language model and
// returns JSON checked against the request's schema. Providers are wrapped
// with logging, retry and timeout decorators by NewProvider.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one response for a request.
type Provider interface {
	// Generate returns the model's answer. When req.Schema is set the
	// provider asks for structured output and Content is validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model the provider is configured for.
	ModelID() string
}

type Request struct {
	System   string
	Messages []Message

	// Schema, when set, constrains the response to a JSON object. When nil
	// Content holds the raw text.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema. Name is sent as the schema or tool name and
// keys the compiled-schema cache, so it must be unique per definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request, which may be a
	// dated variant of ModelID.
	Model string

	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

// Stop reasons, normalized across providers.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish validates content against the request schema and assembles the
// response. A structured response cut off by the token limit is reported as
// ErrMaxTokensExceeded rather than as invalid JSON.
func finish(req Request, content json.RawMessage, model string, usage Usage, stop string) (*Response, error) {
	if req.Schema != nil {
		if stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}

// resolveModel maps a friendly alias to a model ID. Unknown names are used
// as given.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}

type purposeKey struct{}

// WithPurpose labels requests made with ctx, e.g. "reflection" or "recap".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return "unknown"
}
