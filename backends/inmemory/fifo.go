package inmemory

import (
	"context"
	"slices"
	"sync"

	"github.com/botirk38/docsim/types"
)

// FIFOCache evicts the oldest inserted embedding.
type FIFOCache struct {
	mu       sync.Mutex
	entries  map[string][]float64
	queue    []string
	capacity int
}

// NewFIFOCache creates a FIFO embedding cache. A capacity of zero or less
// disables eviction.
func NewFIFOCache(config types.CacheConfig) (*FIFOCache, error) {
	return &FIFOCache{
		entries:  make(map[string][]float64),
		queue:    make([]string, 0, max(config.Capacity, 0)),
		capacity: config.Capacity,
	}, nil
}

func (c *FIFOCache) Get(_ context.Context, key string) ([]float64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	emb, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(emb), true, nil
}

// Set stores embedding under key. Updating a key keeps its queue position.
func (c *FIFOCache) Set(_ context.Context, key string, embedding []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = slices.Clone(embedding)
		return nil
	}

	if c.capacity > 0 && len(c.entries) >= c.capacity {
		oldest := c.queue[0]
		c.queue = c.queue[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = slices.Clone(embedding)
	c.queue = append(c.queue, key)
	return nil
}

func (c *FIFOCache) Len(_ context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries), nil
}

func (c *FIFOCache) Flush(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string][]float64)
	c.queue = c.queue[:0]
	return nil
}

func (c *FIFOCache) Close() error {
	return nil
}
