// Package remote holds embedding caches backed by network stores.
package remote

import (
	"context"
	"crypto/tls"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/botirk38/docsim/types"
)

const defaultPrefix = "docsim:emb:"

var errCorruptEmbedding = errors.New("stored embedding has invalid length")

// RedisCache stores embeddings as packed little-endian float64 strings.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// parseRedisURL parses a Redis URL and returns redis.Options
func parseRedisURL(connectionString string) (*redis.Options, error) {
	if strings.HasPrefix(connectionString, "redis://") || strings.HasPrefix(connectionString, "rediss://") {
		parsedURL, err := url.Parse(connectionString)
		if err != nil {
			return nil, fmt.Errorf("invalid Redis URL: %w", err)
		}

		opts := &redis.Options{
			Addr: parsedURL.Host,
		}

		if parsedURL.Scheme == "rediss" {
			opts.TLSConfig = &tls.Config{
				MinVersion: tls.VersionTLS12,
			}
		}

		if parsedURL.User != nil {
			opts.Username = parsedURL.User.Username()
			if password, ok := parsedURL.User.Password(); ok {
				opts.Password = password
			}
		}

		if parsedURL.Path != "" && parsedURL.Path != "/" {
			dbStr := strings.TrimPrefix(parsedURL.Path, "/")
			db, err := strconv.Atoi(dbStr)
			if err != nil {
				return nil, fmt.Errorf("invalid Redis database %q: %w", dbStr, err)
			}
			opts.DB = db
		}

		return opts, nil
	}

	// host:port
	return &redis.Options{
		Addr: connectionString,
	}, nil
}

// NewRedisCache connects to Redis and verifies the connection with PING.
func NewRedisCache(ctx context.Context, config types.CacheConfig) (*RedisCache, error) {
	opts, err := parseRedisURL(config.ConnectionString)
	if err != nil {
		return nil, err
	}

	if config.Username != "" {
		opts.Username = config.Username
	}
	if config.Password != "" {
		opts.Password = config.Password
	}
	if config.Database != 0 {
		opts.DB = config.Database
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := config.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &RedisCache{client: client, prefix: prefix, ttl: config.TTL}, nil
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

// floatsToBytes packs a float64 slice for Redis storage
func floatsToBytes(fs []float64) []byte {
	buf := make([]byte, len(fs)*8)
	for i, f := range fs {
		binary.LittleEndian.PutUint64(buf[i*8:(i+1)*8], math.Float64bits(f))
	}
	return buf
}

// bytesToFloats reverses floatsToBytes
func bytesToFloats(buf []byte) ([]float64, error) {
	if len(buf)%8 != 0 {
		return nil, errCorruptEmbedding
	}
	fs := make([]float64, len(buf)/8)
	for i := range fs {
		fs[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8 : (i+1)*8]))
	}
	return fs, nil
}

// Get fetches the embedding stored under key
func (c *RedisCache) Get(ctx context.Context, key string) ([]float64, bool, error) {
	buf, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get embedding from Redis: %w", err)
	}

	emb, err := bytesToFloats(buf)
	if err != nil {
		return nil, false, fmt.Errorf("key %s: %w", key, err)
	}
	return emb, true, nil
}

// Set stores embedding under key, expiring after the configured TTL if any
func (c *RedisCache) Set(ctx context.Context, key string, embedding []float64) error {
	if err := c.client.Set(ctx, c.key(key), floatsToBytes(embedding), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set embedding in Redis: %w", err)
	}
	return nil
}

// scan visits every key under the cache prefix.
func (c *RedisCache) scan(ctx context.Context, visit func(keys []string) error) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan keys from Redis: %w", err)
		}
		if len(keys) > 0 {
			if err := visit(keys); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Len returns the number of embeddings under the prefix
func (c *RedisCache) Len(ctx context.Context) (int, error) {
	var count int
	err := c.scan(ctx, func(keys []string) error {
		count += len(keys)
		return nil
	})
	return count, err
}

// Flush deletes every embedding under the prefix
func (c *RedisCache) Flush(ctx context.Context) error {
	return c.scan(ctx, func(keys []string) error {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to flush Redis: %w", err)
		}
		return nil
	})
}

// Close closes the Redis client
func (c *RedisCache) Close() error {
	return c.client.Close()
}
