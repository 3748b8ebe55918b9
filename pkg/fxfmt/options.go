package fxfmt

import (
	"time"

	"fxfmt/internal/provider"
	"fxfmt/internal/store"
)

// Option configures an Engine.
type Option func(*Engine)

// WithIndentSize sets the number of spaces per indentation level.
func WithIndentSize(n int) Option {
	return func(e *Engine) { e.indentSize = n }
}

// WithMaxDepth sets the formatter's nesting-depth bound.
func WithMaxDepth(n int) Option {
	return func(e *Engine) { e.maxDepth = n }
}

// WithTimeout sets the timeout for provider requests. It only applies to
// provider options given after it.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Engine) { e.timeout = timeout }
}

// WithStreamCallback sets a callback for streamed provider output. It only
// applies to provider options given after it.
func WithStreamCallback(cb func(token string)) Option {
	return func(e *Engine) { e.streamCb = cb }
}

// WithAnthropic configures the Anthropic provider. An empty model keeps the
// provider default.
func WithAnthropic(model string) Option {
	return func(e *Engine) {
		opts := []provider.AnthropicOption{provider.WithAnthropicTimeout(e.timeout)}
		if model != "" {
			opts = append(opts, provider.WithAnthropicModel(model))
		}
		if e.streamCb != nil {
			opts = append(opts, provider.WithAnthropicStreamCallback(e.streamCb))
		}
		e.provider = provider.NewAnthropic(opts...)
	}
}

// WithOllama configures a local Ollama provider.
func WithOllama(url, model string) Option {
	return func(e *Engine) {
		opts := []provider.OllamaOption{provider.WithOllamaTimeout(e.timeout)}
		if url != "" {
			opts = append(opts, provider.WithOllamaURL(url))
		}
		if model != "" {
			opts = append(opts, provider.WithOllamaModel(model))
		}
		if e.streamCb != nil {
			opts = append(opts, provider.WithOllamaStreamCallback(e.streamCb))
		}
		e.provider = provider.NewOllama(opts...)
	}
}

// WithOpenRouter configures the OpenRouter provider.
func WithOpenRouter(model string) Option {
	return func(e *Engine) {
		opts := []provider.OpenRouterOption{provider.WithOpenRouterTimeout(e.timeout)}
		if model != "" {
			opts = append(opts, provider.WithOpenRouterModel(model))
		}
		if e.streamCb != nil {
			opts = append(opts, provider.WithOpenRouterStreamCallback(e.streamCb))
		}
		e.provider = provider.NewOpenRouter(opts...)
	}
}

// WithMockProvider configures a canned provider (for testing).
func WithMockProvider(response string) Option {
	return func(e *Engine) {
		e.provider = provider.NewMock(response)
	}
}

// WithMockProviderFunc configures a handler-backed provider (for testing).
func WithMockProviderFunc(handler func(system, user string) string) Option {
	return func(e *Engine) {
		e.provider = provider.NewMockHandler(handler)
	}
}

// WithSQLiteHistory enables request history at the given SQLite path. The
// option is skipped silently when the store cannot be opened.
func WithSQLiteHistory(path string) Option {
	return func(e *Engine) {
		s, err := store.NewSQLite(path)
		if err == nil {
			e.history = s
		}
	}
}

// WithMemoryHistory enables an in-memory request history (for testing).
func WithMemoryHistory() Option {
	return func(e *Engine) {
		e.history = store.NewMemory()
	}
}
