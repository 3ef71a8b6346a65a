// Package config loads docsim settings from a TOML file and turns them into
// engine options.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/botirk38/docsim/backends"
	"github.com/botirk38/docsim/chunker"
	"github.com/botirk38/docsim/classifier"
	"github.com/botirk38/docsim/logging"
	"github.com/botirk38/docsim/options"
	"github.com/botirk38/docsim/providers"
	"github.com/botirk38/docsim/similarity"
	"github.com/botirk38/docsim/stemmer"
	"github.com/botirk38/docsim/types"
)

// Config mirrors the TOML file layout.
type Config struct {
	Engine    EngineConfig    `toml:"engine"`
	Embedding EmbeddingConfig `toml:"embedding"`
	Cache     CacheConfig     `toml:"cache"`
	Batch     BatchConfig     `toml:"batch"`
	Log       LogConfig       `toml:"log"`
	Server    ServerConfig    `toml:"server"`
}

type EngineConfig struct {
	Backend string `toml:"backend"`
	// Threshold is nil when unset so the backend default applies.
	Threshold     *float64 `toml:"threshold"`
	ThresholdUnit string   `toml:"threshold_unit"`
	Stemmer       string   `toml:"stemmer"`
}

type EmbeddingConfig struct {
	Provider     string `toml:"provider"`
	Model        string `toml:"model"`
	APIKey       string `toml:"api_key"`
	BaseURL      string `toml:"base_url"`
	Comparator   string `toml:"comparator"`
	MaxTokens    int    `toml:"max_tokens"`
	ChunkSize    int    `toml:"chunk_size"`
	ChunkOverlap int    `toml:"chunk_overlap"`
}

type CacheConfig struct {
	Type     string `toml:"type"`
	Capacity int    `toml:"capacity"`
	RedisURL string `toml:"redis_url"`
	Prefix   string `toml:"prefix"`
	TTL      string `toml:"ttl"`
}

type BatchConfig struct {
	Workers int `toml:"workers"`
	Top     int `toml:"top"`
}

type LogConfig struct {
	JSON    bool   `toml:"json"`
	File    string `toml:"file"`
	Verbose bool   `toml:"verbose"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	chunk := chunker.DefaultConfig()
	return Config{
		Engine: EngineConfig{
			Backend: string(types.ScorerPresence),
			Stemmer: string(stemmer.AlgorithmLancaster),
		},
		Embedding: EmbeddingConfig{
			Provider:     string(types.ProviderOpenAI),
			Comparator:   "cosine",
			MaxTokens:    chunk.MaxTokens,
			ChunkSize:    chunk.WindowSize,
			ChunkOverlap: chunk.Overlap,
		},
		Cache: CacheConfig{
			Type:     string(types.CacheLRU),
			Capacity: 1024,
		},
		Batch: BatchConfig{
			Workers: 4,
			Top:     10,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads path over the defaults. A missing file or empty path yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("open config: %w", err)
		default:
			defer file.Close()
			decoder := toml.NewDecoder(file)
			decoder.DisallowUnknownFields()
			if err := decoder.Decode(&cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Engine.Backend = strings.ToLower(strings.TrimSpace(c.Engine.Backend))
	c.Engine.ThresholdUnit = strings.ToLower(strings.TrimSpace(c.Engine.ThresholdUnit))
	c.Engine.Stemmer = strings.ToLower(strings.TrimSpace(c.Engine.Stemmer))
	c.Embedding.Provider = strings.ToLower(strings.TrimSpace(c.Embedding.Provider))
	c.Embedding.Comparator = strings.ToLower(strings.TrimSpace(c.Embedding.Comparator))
	c.Cache.Type = strings.ToLower(strings.TrimSpace(c.Cache.Type))

	if c.Embedding.APIKey == "" {
		switch types.ProviderType(c.Embedding.Provider) {
		case types.ProviderOpenAI:
			c.Embedding.APIKey = os.Getenv("OPENAI_API_KEY")
		case types.ProviderGemini:
			c.Embedding.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	}
}

// Threshold returns the configured cutoff, or the backend default when none
// is set. A missing unit is inferred from the backend.
func (c Config) Threshold() classifier.Threshold {
	def := options.DefaultThreshold(types.ScorerType(c.Engine.Backend))
	if c.Engine.Threshold == nil {
		return def
	}
	unit := classifier.Unit(c.Engine.ThresholdUnit)
	if unit == "" {
		unit = def.Unit
	}
	return classifier.Threshold{Value: *c.Engine.Threshold, Unit: unit}
}

// TTL parses the cache TTL. Empty means no expiry.
func (c Config) TTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Cache.TTL)
}

// Chunk returns the embedding chunking limits.
func (c Config) Chunk() chunker.Config {
	return chunker.Config{
		MaxTokens:  c.Embedding.MaxTokens,
		WindowSize: c.Embedding.ChunkSize,
		Overlap:    c.Embedding.ChunkOverlap,
	}
}

// Logging returns the logger settings.
func (c Config) Logging() logging.Config {
	return logging.Config{
		File:    c.Log.File,
		JSON:    c.Log.JSON,
		Verbose: c.Log.Verbose,
		Async:   true,
	}
}

// Options translates the configuration into engine options. Network
// resources (providers, Redis) are only created for the embedding backend.
func (c Config) Options(ctx context.Context) ([]options.Option, error) {
	st, err := stemmer.New(stemmer.Algorithm(c.Engine.Stemmer))
	if err != nil {
		return nil, err
	}
	opts := []options.Option{
		options.WithStemmer(st),
		options.WithThreshold(c.Threshold()),
	}

	if types.ScorerType(c.Engine.Backend) != types.ScorerEmbedding {
		return append(opts, options.WithPresenceScorer()), nil
	}

	comparator, err := similarity.ByName(c.Embedding.Comparator)
	if err != nil {
		return nil, err
	}
	provider, err := providers.New(ctx, providers.Config{
		Type:    types.ProviderType(c.Embedding.Provider),
		APIKey:  c.Embedding.APIKey,
		BaseURL: c.Embedding.BaseURL,
		Model:   c.Embedding.Model,
	})
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		options.WithEmbeddingScorer(),
		options.WithCustomProvider(provider),
		options.WithSimilarityComparator(comparator),
		options.WithChunking(c.Chunk()),
	)

	ttl, err := c.TTL()
	if err != nil {
		return nil, err
	}
	cache, err := backends.New(ctx, types.CacheType(c.Cache.Type), types.CacheConfig{
		Capacity:         c.Cache.Capacity,
		ConnectionString: c.Cache.RedisURL,
		Prefix:           c.Cache.Prefix,
		TTL:              ttl,
	})
	if err != nil {
		provider.Close()
		return nil, fmt.Errorf("cache: %w", err)
	}
	if cache != nil {
		opts = append(opts, options.WithCustomCache(cache))
	}
	return opts, nil
}
