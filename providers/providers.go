// Package providers builds embedding providers by name.
package providers

import (
	"context"
	"fmt"

	"github.com/botirk38/docsim/providers/gemini"
	"github.com/botirk38/docsim/providers/openai"
	"github.com/botirk38/docsim/types"
)

// Config selects and configures an embedding provider.
type Config struct {
	Type    types.ProviderType
	APIKey  string
	BaseURL string
	Model   string
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config openai.OpenAIConfig) (types.EmbeddingProvider, error) {
	return openai.NewOpenAIProvider(config)
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, config gemini.GeminiConfig) (types.EmbeddingProvider, error) {
	return gemini.NewGeminiProvider(ctx, config)
}

// New creates the provider named by cfg.Type.
func New(ctx context.Context, cfg Config) (types.EmbeddingProvider, error) {
	switch cfg.Type {
	case types.ProviderOpenAI, "":
		return NewOpenAIProvider(openai.OpenAIConfig{APIKey: cfg.APIKey, BaseURL: cfg.BaseURL, Model: cfg.Model})
	case types.ProviderGemini:
		return NewGeminiProvider(ctx, gemini.GeminiConfig{APIKey: cfg.APIKey, BaseURL: cfg.BaseURL, Model: cfg.Model})
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", cfg.Type)
	}
}
