package llm

import (
	"context"

	"github.com/hoangvan1410/Minumate/internal/model"
)

// Message is one turn of a chat exchange sent to a provider
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CompletionRequest is the input for one text-completion call
type CompletionRequest struct {
	// System sets the provider's system role for the call
	System string

	// Messages is the ordered conversation, optionally including few-shot
	// example exchanges ahead of the real request
	Messages []Message

	// Model overrides the configured model when non-empty
	Model string

	// Temperature controls sampling randomness
	Temperature float32

	// MaxTokens limits the response length
	MaxTokens int
}

// Provider defines the interface for text-completion providers.
// The pipeline treats it as an opaque capability: a prompt goes in,
// a structured-or-unstructured string comes out.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete submits the request and returns the response content
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Config holds provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests in seconds
	Timeout int
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider: cfg.Provider,
		Model:    cfg.Model,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.Timeout,
	}
}
