package inmemory

import (
	"context"
	"slices"
	"sync"

	"github.com/botirk38/docsim/types"
)

type lfuEntry struct {
	embedding []float64
	frequency int
	// seq breaks frequency ties in favour of the older entry.
	seq uint64
}

// LFUCache evicts the least frequently used embedding.
type LFUCache struct {
	mu       sync.Mutex
	entries  map[string]*lfuEntry
	capacity int
	seq      uint64
}

// NewLFUCache creates an LFU embedding cache. A capacity of zero or less
// disables eviction.
func NewLFUCache(config types.CacheConfig) (*LFUCache, error) {
	return &LFUCache{
		entries:  make(map[string]*lfuEntry),
		capacity: config.Capacity,
	}, nil
}

// Get returns the embedding under key and counts the access.
func (c *LFUCache) Get(_ context.Context, key string) ([]float64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	e.frequency++
	return slices.Clone(e.embedding), true, nil
}

func (c *LFUCache) Set(_ context.Context, key string, embedding []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, exists := c.entries[key]; exists {
		e.embedding = slices.Clone(embedding)
		e.frequency++
		return nil
	}

	if c.capacity > 0 && len(c.entries) >= c.capacity {
		c.evict()
	}

	c.seq++
	c.entries[key] = &lfuEntry{embedding: slices.Clone(embedding), frequency: 1, seq: c.seq}
	return nil
}

// evict removes the least frequently used entry. Caller holds mu.
func (c *LFUCache) evict() {
	var victim string
	var found *lfuEntry
	for key, e := range c.entries {
		if found == nil || e.frequency < found.frequency ||
			(e.frequency == found.frequency && e.seq < found.seq) {
			victim, found = key, e
		}
	}
	if found != nil {
		delete(c.entries, victim)
	}
}

func (c *LFUCache) Len(_ context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries), nil
}

func (c *LFUCache) Flush(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*lfuEntry)
	return nil
}

func (c *LFUCache) Close() error {
	return nil
}
