package types

import (
	"context"
	"time"
)

// Document is a labelled piece of raw text handed to the engine.
// The engine never mutates it.
type Document struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// MatchKind describes how a plagiarised pair relates to its source.
type MatchKind string

const (
	MatchNone      MatchKind = ""
	MatchExact     MatchKind = "exact"
	MatchReordered MatchKind = "reordered"
	MatchPartial   MatchKind = "partial"
)

// Verdict is the outcome of comparing two documents.
type Verdict struct {
	LabelA               string    `json:"label_a"`
	LabelB               string    `json:"label_b"`
	SimilarityPercentage float64   `json:"similarity_percentage"`
	IsPlagiarism         bool      `json:"is_plagiarism"`
	Kind                 MatchKind `json:"kind,omitempty"`
	Backend              string    `json:"backend,omitempty"`

	// Undetermined marks the sentinel outcome produced when no similarity
	// could be computed. SimilarityPercentage and IsPlagiarism are then
	// meaningless and Message says why.
	Undetermined bool   `json:"undetermined,omitempty"`
	Message      string `json:"message,omitempty"`
}

// Scorer reduces two documents to a single similarity value.
// Implementations must be safe for concurrent use.
type Scorer interface {
	// Name identifies the backend in verdicts and logs.
	Name() string
	// Score returns the similarity of a and b. Presence-based scores lie in [0, 1].
	Score(ctx context.Context, a, b Document) (float64, error)
}

// EmbeddingProvider defines the interface all embedding backends must satisfy.
type EmbeddingProvider interface {
	// EmbedText turns a piece of text into its embedding vector.
	EmbedText(ctx context.Context, text string) ([]float64, error)
	// Model names the embedding model, used to namespace cached vectors.
	Model() string
	// MaxTokens is the largest input the model accepts.
	GetMaxTokens() int
	// Close frees any resources held by the provider.
	Close()
}

// EmbeddingCache stores embeddings keyed by a content hash.
type EmbeddingCache interface {
	Get(ctx context.Context, key string) ([]float64, bool, error)
	Set(ctx context.Context, key string, embedding []float64) error
	Len(ctx context.Context) (int, error)
	Flush(ctx context.Context) error
	Close() error
}

// Logger is the structured key/value logging port used across the module.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Close() error
}

// ScorerType selects a scoring backend.
type ScorerType string

const (
	ScorerPresence  ScorerType = "presence"
	ScorerEmbedding ScorerType = "embedding"
)

// ProviderType represents the type of embedding provider
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
)

// CacheType represents the type of embedding cache
type CacheType string

const (
	CacheNone  CacheType = "none"
	CacheLRU   CacheType = "lru"
	CacheFIFO  CacheType = "fifo"
	CacheLFU   CacheType = "lfu"
	CacheRedis CacheType = "redis"
)

// CacheConfig provides configuration options for embedding caches
type CacheConfig struct {
	// For in-memory caches
	Capacity int

	// For Redis
	ConnectionString string
	Username         string
	Password         string
	Database         int
	Prefix           string
	TTL              time.Duration
}
