package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"
)

const (
	DefaultGeminiModel = "gemini-embedding-001"

	defaultMaxTokens = 2048
)

// ErrMissingAPIKey is returned when neither the config nor GEMINI_API_KEY
// holds a key.
var ErrMissingAPIKey = errors.New("gemini: API key is required")

var geminiModelLimits = map[string]int{
	"gemini-embedding-001": 2048,
	"text-embedding-004":   2048,
}

// GeminiProvider embeds document text with the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// GeminiConfig provides configuration options for the Gemini embedding provider
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewGeminiProvider creates an embedding provider for Gemini.
// The API key falls back to GEMINI_API_KEY.
func NewGeminiProvider(ctx context.Context, config GeminiConfig) (*GeminiProvider, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, ErrMissingAPIKey
		}
	}

	model := config.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = config.BaseURL
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: model}, nil
}

// EmbedText sends one embedding request to Gemini.
func (p *GeminiProvider) EmbedText(ctx context.Context, text string) ([]float64, error) {
	res, err := p.client.Models.EmbedContent(ctx, p.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini embedding request: %w", err)
	}
	if len(res.Embeddings) == 0 || res.Embeddings[0] == nil {
		return nil, errors.New("no embedding returned by Gemini")
	}

	values := res.Embeddings[0].Values
	embedding := make([]float64, len(values))
	for i, v := range values {
		embedding[i] = float64(v)
	}
	return embedding, nil
}

// Model returns the embedding model name.
func (p *GeminiProvider) Model() string { return p.model }

// GetMaxTokens returns the model's input limit, or a safe default for
// unknown models.
func (p *GeminiProvider) GetMaxTokens() int {
	if limit, ok := geminiModelLimits[p.model]; ok {
		return limit
	}
	return defaultMaxTokens
}

func (p *GeminiProvider) Close() {}
