// Package backends builds embedding caches by type.
package backends

import (
	"context"
	"errors"

	"github.com/botirk38/docsim/backends/inmemory"
	"github.com/botirk38/docsim/backends/remote"
	"github.com/botirk38/docsim/types"
)

var ErrUnsupportedBackend = errors.New("unsupported cache type")

// New creates an embedding cache of the given type. CacheNone and the empty
// type return a nil cache.
func New(ctx context.Context, cacheType types.CacheType, config types.CacheConfig) (types.EmbeddingCache, error) {
	switch cacheType {
	case types.CacheNone, "":
		return nil, nil
	case types.CacheLRU:
		return NewLRUCache(config)
	case types.CacheFIFO:
		return NewFIFOCache(config)
	case types.CacheLFU:
		return NewLFUCache(config)
	case types.CacheRedis:
		return NewRedisCache(ctx, config)
	default:
		return nil, ErrUnsupportedBackend
	}
}

// NewLRUCache creates a new LRU cache
func NewLRUCache(config types.CacheConfig) (types.EmbeddingCache, error) {
	return inmemory.NewLRUCache(config)
}

// NewFIFOCache creates a new FIFO cache
func NewFIFOCache(config types.CacheConfig) (types.EmbeddingCache, error) {
	return inmemory.NewFIFOCache(config)
}

// NewLFUCache creates a new LFU cache
func NewLFUCache(config types.CacheConfig) (types.EmbeddingCache, error) {
	return inmemory.NewLFUCache(config)
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(ctx context.Context, config types.CacheConfig) (types.EmbeddingCache, error) {
	return remote.NewRedisCache(ctx, config)
}
