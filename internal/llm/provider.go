package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured JSON from a prompt. Every backend
// (Anthropic, OpenAI, OpenRouter, Gemini and the mock) implements it, and
// the retry and recording decorators wrap it.
type Provider interface {
	// Generate sends the request and returns the model output. When
	// req.Schema is set, Content is JSON already validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Name identifies the backend, e.g. "anthropic".
	Name() string

	// ModelID returns the model the provider is configured to call.
	ModelID() string
}

// Request is a single-turn (or short multi-turn) prompt.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema
	MaxTokens   int
	Temperature float64 // 0 leaves the provider default
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt builds the common one-message request.
func UserPrompt(system, prompt string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
}

// Schema is a named JSON Schema the response must satisfy. Name doubles
// as the OpenAI schema name and the validator cache key, so keep it
// kebab-case and unique per shape.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Stop reasons, normalized across providers.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is the model output.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Usage is the token consumption of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func newUsage(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}

// finish turns raw provider output into a Response. Truncated output is
// reported as ErrMaxTokensExceeded and schema violations as
// ErrInvalidResponse, so both are handled the same way for every backend.
func finish(req Request, content json.RawMessage, usage Usage, model, stop string) (*Response, error) {
	if stop == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}

// resolveModel maps a short alias to a provider model ID. Unknown names
// pass through so full model IDs work too.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
