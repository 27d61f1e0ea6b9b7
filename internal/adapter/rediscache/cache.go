// Package rediscache implements the analysis response cache on Redis.
//
// It is a look-aside cache: callers check it first, compute on miss, and
// write the result back. The cache is purely an optimization — every failure
// degrades to a miss and is logged, never surfaced to the caller.
package rediscache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/reflectlabs/feedback-analyzer/internal/config"
)

// Cache wraps a Redis client with miss-on-error semantics.
type Cache struct {
	client *redis.Client
	log    *slog.Logger
}

// New creates a Cache from CacheConfig. The connection is lazy; reachability
// is checked via Ping.
func New(cfg config.CacheConfig, logger *slog.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &Cache{
		client: client,
		log:    logger.With("component", "rediscache"),
	}
}

// Get returns the cached payload for key. The second return value reports
// whether the key was present; any Redis error counts as a miss.
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WarnContext(ctx, "cache get failed, treating as miss",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return "", false
	}
	return val, true
}

// Put stores payload under key with the given TTL. Failures are logged and
// swallowed — a missed write only costs latency on the next read.
func (c *Cache) Put(ctx context.Context, key, payload string, ttl time.Duration) {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "cache put failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// Ping reports whether Redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
