// Package options provides functional options for configuring a docsim Engine.
package options

import (
	"context"
	"errors"

	"github.com/botirk38/docsim/backends"
	"github.com/botirk38/docsim/chunker"
	"github.com/botirk38/docsim/classifier"
	"github.com/botirk38/docsim/logging"
	"github.com/botirk38/docsim/providers/gemini"
	"github.com/botirk38/docsim/providers/openai"
	"github.com/botirk38/docsim/scorer/embedding"
	"github.com/botirk38/docsim/scorer/presence"
	"github.com/botirk38/docsim/similarity"
	"github.com/botirk38/docsim/stemmer"
	"github.com/botirk38/docsim/types"
)

// Option represents a configuration option for an Engine
type Option func(*Config) error

// Config holds everything needed to build an Engine
type Config struct {
	Backend   types.ScorerType
	Threshold classifier.Threshold
	Logger    types.Logger
	Stemmer   stemmer.Stemmer

	// Scorer overrides Backend when set.
	Scorer types.Scorer

	// Used by the embedding backend only.
	Provider   types.EmbeddingProvider
	Cache      types.EmbeddingCache
	Comparator similarity.SimilarityFunc
	Chunk      chunker.Config

	thresholdSet bool
}

// DefaultThreshold returns the cutoff used when none is configured:
// 55 percent for presence vectors and 0.95 for embeddings.
func DefaultThreshold(backend types.ScorerType) classifier.Threshold {
	if backend == types.ScorerEmbedding {
		return classifier.Ratio(0.95)
	}
	return classifier.Percentage(55)
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Backend:    types.ScorerPresence,
		Threshold:  DefaultThreshold(types.ScorerPresence),
		Logger:     logging.Discard(),
		Stemmer:    stemmer.NewLancaster(),
		Comparator: similarity.CosineSimilarity,
		Chunk:      chunker.DefaultConfig(),
	}
}

// Apply applies all the given options to the config
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	if !c.thresholdSet {
		c.Threshold = DefaultThreshold(c.Backend)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Threshold.Validate(); err != nil {
		return err
	}
	if c.Scorer != nil {
		return nil
	}
	switch c.Backend {
	case types.ScorerPresence:
		return nil
	case types.ScorerEmbedding:
		if c.Provider == nil {
			return errors.New("embedding provider is required - use WithOpenAIProvider, WithGeminiProvider, etc.")
		}
		return c.Chunk.Validate()
	default:
		return errors.New("unknown scoring backend: " + string(c.Backend))
	}
}

// BuildScorer returns the configured scorer, assembling the presence or
// embedding backend when no custom scorer was supplied.
func (c *Config) BuildScorer() (types.Scorer, error) {
	if c.Scorer != nil {
		return c.Scorer, nil
	}
	if c.Backend == types.ScorerEmbedding {
		return embedding.New(embedding.Config{
			Provider:   c.Provider,
			Cache:      c.Cache,
			Comparator: c.Comparator,
			Chunk:      c.Chunk,
			Logger:     c.Logger,
		})
	}
	return presence.New(c.Stemmer, c.Logger), nil
}

// WithThreshold sets the plagiarism cutoff
func WithThreshold(t classifier.Threshold) Option {
	return func(cfg *Config) error {
		if err := t.Validate(); err != nil {
			return err
		}
		cfg.Threshold = t
		cfg.thresholdSet = true
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(logger types.Logger) Option {
	return func(cfg *Config) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.Logger = logger
		return nil
	}
}

// WithStemmer selects the stemming algorithm
func WithStemmer(s stemmer.Stemmer) Option {
	return func(cfg *Config) error {
		if s == nil {
			return errors.New("stemmer cannot be nil")
		}
		cfg.Stemmer = s
		return nil
	}
}

// WithPresenceScorer selects the binary presence backend
func WithPresenceScorer() Option {
	return func(cfg *Config) error {
		cfg.Backend = types.ScorerPresence
		return nil
	}
}

// WithEmbeddingScorer selects the embedding backend. A provider must be set too.
func WithEmbeddingScorer() Option {
	return func(cfg *Config) error {
		cfg.Backend = types.ScorerEmbedding
		return nil
	}
}

// WithScorer allows using a pre-built scorer
func WithScorer(s types.Scorer) Option {
	return func(cfg *Config) error {
		if s == nil {
			return errors.New("scorer cannot be nil")
		}
		cfg.Scorer = s
		return nil
	}
}

// WithOpenAIProvider sets up the OpenAI embedding provider
func WithOpenAIProvider(apiKey string, model ...string) Option {
	return func(cfg *Config) error {
		config := openai.OpenAIConfig{APIKey: apiKey}
		if len(model) > 0 {
			config.Model = model[0]
		}

		provider, err := openai.NewOpenAIProvider(config)
		if err != nil {
			return err
		}
		cfg.Provider = provider
		return nil
	}
}

// WithGeminiProvider sets up the Gemini embedding provider
func WithGeminiProvider(apiKey string, model ...string) Option {
	return func(cfg *Config) error {
		config := gemini.GeminiConfig{APIKey: apiKey}
		if len(model) > 0 {
			config.Model = model[0]
		}

		provider, err := gemini.NewGeminiProvider(context.Background(), config)
		if err != nil {
			return err
		}
		cfg.Provider = provider
		return nil
	}
}

// WithCustomProvider allows using a pre-configured embedding provider
func WithCustomProvider(provider types.EmbeddingProvider) Option {
	return func(cfg *Config) error {
		if provider == nil {
			return errors.New("provider cannot be nil")
		}
		cfg.Provider = provider
		return nil
	}
}

// WithLRUCache caches embeddings in memory with LRU eviction
func WithLRUCache(capacity int) Option {
	return withCache(types.CacheLRU, types.CacheConfig{Capacity: capacity})
}

// WithFIFOCache caches embeddings in memory with FIFO eviction
func WithFIFOCache(capacity int) Option {
	return withCache(types.CacheFIFO, types.CacheConfig{Capacity: capacity})
}

// WithLFUCache caches embeddings in memory with LFU eviction
func WithLFUCache(capacity int) Option {
	return withCache(types.CacheLFU, types.CacheConfig{Capacity: capacity})
}

// WithRedisCache caches embeddings in Redis
func WithRedisCache(addr string, db int) Option {
	return withCache(types.CacheRedis, types.CacheConfig{ConnectionString: addr, Database: db})
}

func withCache(cacheType types.CacheType, config types.CacheConfig) Option {
	return func(cfg *Config) error {
		cache, err := backends.New(context.Background(), cacheType, config)
		if err != nil {
			return err
		}
		cfg.Cache = cache
		return nil
	}
}

// WithCustomCache allows using a pre-configured embedding cache
func WithCustomCache(cache types.EmbeddingCache) Option {
	return func(cfg *Config) error {
		if cache == nil {
			return errors.New("cache cannot be nil")
		}
		cfg.Cache = cache
		return nil
	}
}

// WithSimilarityComparator sets the function comparing document embeddings
func WithSimilarityComparator(comparator similarity.SimilarityFunc) Option {
	return func(cfg *Config) error {
		if comparator == nil {
			return errors.New("comparator cannot be nil")
		}
		cfg.Comparator = comparator
		return nil
	}
}

// WithChunking sets how long documents are split before embedding
func WithChunking(chunk chunker.Config) Option {
	return func(cfg *Config) error {
		if err := chunk.Validate(); err != nil {
			return err
		}
		cfg.Chunk = chunk
		return nil
	}
}
