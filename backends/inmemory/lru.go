// Package inmemory holds process-local embedding caches with LRU, FIFO and
// LFU eviction.
package inmemory

import (
	"context"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/botirk38/docsim/types"
)

// LRUCache evicts the least recently used embedding.
type LRUCache struct {
	mu    sync.Mutex
	cache *lru.Cache[string, []float64]
}

// NewLRUCache creates an LRU embedding cache
func NewLRUCache(config types.CacheConfig) (*LRUCache, error) {
	cache, err := lru.New[string, []float64](config.Capacity)
	if err != nil {
		return nil, err
	}
	return &LRUCache{cache: cache}, nil
}

// Get returns a copy of the embedding stored under key.
func (c *LRUCache) Get(_ context.Context, key string) ([]float64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	emb, ok := c.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(emb), true, nil
}

// Set stores a copy of embedding under key.
func (c *LRUCache) Set(_ context.Context, key string, embedding []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Add(key, slices.Clone(embedding))
	return nil
}

// Len returns the number of cached embeddings
func (c *LRUCache) Len(_ context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Len(), nil
}

// Flush drops every cached embedding
func (c *LRUCache) Flush(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Purge()
	return nil
}

// Close is a no-op for in-memory caches
func (c *LRUCache) Close() error {
	return nil
}
