package provider

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouter is a provider for the OpenRouter API (OpenAI-compatible chat
// completions).
type OpenRouter struct {
	APIKey   string
	Model    string
	Timeout  time.Duration
	StreamCb StreamCallback
}

// OpenRouterOption configures the OpenRouter provider.
type OpenRouterOption func(*OpenRouter)

// WithOpenRouterAPIKey sets the API key.
func WithOpenRouterAPIKey(key string) OpenRouterOption {
	return func(o *OpenRouter) { o.APIKey = key }
}

// WithOpenRouterModel sets the model name.
func WithOpenRouterModel(model string) OpenRouterOption {
	return func(o *OpenRouter) { o.Model = model }
}

// WithOpenRouterTimeout sets the request timeout.
func WithOpenRouterTimeout(timeout time.Duration) OpenRouterOption {
	return func(o *OpenRouter) { o.Timeout = timeout }
}

// WithOpenRouterStreamCallback sets the streaming callback.
func WithOpenRouterStreamCallback(cb StreamCallback) OpenRouterOption {
	return func(o *OpenRouter) { o.StreamCb = cb }
}

// NewOpenRouter creates an OpenRouter provider. The API key defaults to the
// OPEN_ROUTER_API_KEY environment variable.
func NewOpenRouter(opts ...OpenRouterOption) *OpenRouter {
	o := &OpenRouter{
		APIKey:  os.Getenv("OPEN_ROUTER_API_KEY"),
		Model:   "z-ai/glm-4.5-air:free",
		Timeout: 2 * time.Minute,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type openRouterRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type openRouterResponse struct {
	Choices []struct {
		Message message `json:"message"`
		Delta   message `json:"delta"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Prompt sends a prompt to OpenRouter and returns the reply text.
func (o *OpenRouter) Prompt(system, user string) (string, error) {
	if o.APIKey == "" {
		return "", fmt.Errorf("OPEN_ROUTER_API_KEY: %w", ErrMissingAPIKey)
	}

	var messages []message
	if system != "" {
		messages = append(messages, message{Role: "system", Content: system})
	}
	messages = append(messages, message{Role: "user", Content: user})

	jsonBody, err := json.Marshal(openRouterRequest{
		Model:    o.Model,
		Messages: messages,
		Stream:   o.StreamCb != nil,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", openRouterEndpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.APIKey)

	client := &http.Client{Timeout: o.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openrouter error (%d): %s", resp.StatusCode, string(body))
	}

	if o.StreamCb != nil {
		return o.readStream(resp.Body)
	}

	var result openRouterResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("openrouter error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("openrouter: empty response")
	}
	return result.Choices[0].Message.Content, nil
}

// readStream consumes an OpenAI-style SSE stream.
func (o *OpenRouter) readStream(body io.Reader) (string, error) {
	sc := bufio.NewScanner(body)
	var full strings.Builder

	for sc.Scan() {
		data, ok := strings.CutPrefix(sc.Text(), "data: ")
		if !ok || data == "" || data == "[DONE]" {
			continue
		}

		var chunk openRouterResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}
		if len(chunk.Choices) == 0 {
			continue
		}

		text := chunk.Choices[0].Delta.Content
		full.WriteString(text)
		if o.StreamCb != nil && text != "" {
			o.StreamCb(text)
		}
	}

	return full.String(), sc.Err()
}
