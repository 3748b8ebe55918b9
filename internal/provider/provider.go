// Package provider defines the LLM backends used for formula optimization.
package provider

import "errors"

// ErrMissingAPIKey means the provider was built without credentials. It is
// a configuration error, distinct from runtime request failures.
var ErrMissingAPIKey = errors.New("API key not set")

// Provider is a minimal chat-completion client. Implementations are
// synchronous; the caller decides about retries and fallbacks.
type Provider interface {
	// Prompt sends a system and user prompt and returns the reply text.
	Prompt(system, user string) (string, error)
}

// StreamCallback receives incremental reply tokens while a response streams.
type StreamCallback func(token string)

// message is the chat message shape shared by all HTTP backends.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
