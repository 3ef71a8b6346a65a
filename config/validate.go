package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/botirk38/docsim/similarity"
	"github.com/botirk38/docsim/stemmer"
	"github.com/botirk38/docsim/types"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEngine(); err != nil {
		return err
	}
	if err := c.validateEmbedding(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if c.Batch.Workers <= 0 {
		return errors.New("batch.workers must be positive")
	}
	if c.Batch.Top < 0 {
		return errors.New("batch.top must be zero or positive")
	}
	return nil
}

func (c *Config) validateEngine() error {
	switch types.ScorerType(c.Engine.Backend) {
	case types.ScorerPresence, types.ScorerEmbedding:
	default:
		return fmt.Errorf("engine.backend: unknown backend %q", c.Engine.Backend)
	}
	switch stemmer.Algorithm(c.Engine.Stemmer) {
	case stemmer.AlgorithmLancaster, stemmer.AlgorithmPorter2:
	default:
		return fmt.Errorf("engine.stemmer: unknown algorithm %q", c.Engine.Stemmer)
	}
	if err := c.Threshold().Validate(); err != nil {
		return fmt.Errorf("engine.threshold: %w", err)
	}
	return nil
}

func (c *Config) validateEmbedding() error {
	if types.ScorerType(c.Engine.Backend) != types.ScorerEmbedding {
		return nil
	}
	switch types.ProviderType(c.Embedding.Provider) {
	case types.ProviderOpenAI, types.ProviderGemini:
	default:
		return fmt.Errorf("embedding.provider: unknown provider %q", c.Embedding.Provider)
	}
	if c.Embedding.APIKey == "" {
		return fmt.Errorf("embedding.api_key is required for provider %s", c.Embedding.Provider)
	}
	if _, err := similarity.ByName(c.Embedding.Comparator); err != nil {
		return fmt.Errorf("embedding.comparator: %w", err)
	}
	if err := c.Chunk().Validate(); err != nil {
		return fmt.Errorf("embedding: %w", err)
	}
	return nil
}

func (c *Config) validateCache() error {
	switch types.CacheType(c.Cache.Type) {
	case types.CacheNone:
	case types.CacheLRU, types.CacheFIFO, types.CacheLFU:
		if c.Cache.Capacity <= 0 {
			return errors.New("cache.capacity must be positive")
		}
	case types.CacheRedis:
		if c.Cache.RedisURL == "" {
			return errors.New("cache.redis_url is required for the redis cache")
		}
	default:
		return fmt.Errorf("cache.type: unknown cache %q", c.Cache.Type)
	}
	if c.Cache.TTL != "" {
		ttl, err := time.ParseDuration(c.Cache.TTL)
		if err != nil {
			return fmt.Errorf("cache.ttl: %w", err)
		}
		if ttl < 0 {
			return errors.New("cache.ttl must not be negative")
		}
	}
	return nil
}
