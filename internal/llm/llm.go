package llm

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no LLM API key is available.
var ErrNotConfigured = errors.New("OPENAI_API_KEY is not configured")

// Message is a single chat turn.
type Message struct {
	Role    string
	Content string
}

// Options tune a single chat completion request.
type Options struct {
	// Temperature defaults to 0.7 when zero; pass a negative value for 0.
	Temperature float64
	// JSONMode requests a machine-parseable JSON object response.
	JSONMode bool
}

// Provider abstracts the chat-completion backend so the pipeline can be
// tested with a stub.
type Provider interface {
	Chat(ctx context.Context, messages []Message, opts Options) (string, error)
	Name() string
}
