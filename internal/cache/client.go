// Package cache provides the Redis-backed response cache for serialized blog
// views. The cache is an optimization, never a correctness dependency: every
// operation is a no-op when the backend is unreachable, and callers fall back
// to a direct store read.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"inkwell/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Client wraps a Redis connection with JSON helpers and a fixed default TTL.
// It is injected into the layers that need it rather than held as process
// state; a Client with a nil connection degrades every call to a no-op.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

type metricsHook struct{}

func (h metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			middleware.RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (h metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			middleware.RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// Connect dials Redis at addr (host:port or redis:// URL) and returns a cache
// client with the given default TTL. On connection failure it logs a warning
// and returns a disabled client so the application keeps serving from the
// store directly.
func Connect(addr string, ttl time.Duration) *Client {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			log.Printf("Redis connection warning: invalid REDIS_URL %q: %v (continuing without cache)", addr, err)
			return &Client{ttl: ttl}
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	rdb := redis.NewClient(opts)
	rdb.AddHook(metricsHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		return &Client{ttl: ttl}
	}
	log.Println("Redis connected successfully")
	return &Client{rdb: rdb, ttl: ttl}
}

// NewWithRedis wraps an existing Redis client. Used by tests and bootstrap
// code that owns the connection lifecycle.
func NewWithRedis(rdb *redis.Client, ttl time.Duration) *Client {
	return &Client{rdb: rdb, ttl: ttl}
}

// Available reports whether a Redis backend is connected.
func (c *Client) Available() bool {
	return c != nil && c.rdb != nil
}

// Redis exposes the underlying connection for collaborators that share the
// backend (token blacklist, login throttle).
func (c *Client) Redis() *redis.Client {
	if c == nil {
		return nil
	}
	return c.rdb
}

// Close releases the underlying connection.
func (c *Client) Close() {
	if c.Available() {
		if err := c.rdb.Close(); err != nil {
			log.Printf("Error closing Redis: %v", err)
		}
	}
}

// GetJSON attempts to get the key and unmarshal it into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func (c *Client) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !c.Available() {
		return false, nil
	}
	s, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with the default TTL.
func (c *Client) SetJSON(ctx context.Context, key string, v any) error {
	if !c.Available() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

// Aside tries the cache first; on miss it calls fetch (which must write into
// dest) and stores the result best-effort. Cache backend errors are treated
// as misses, never surfaced to the caller.
func (c *Client) Aside(ctx context.Context, key, family string, dest any, fetch func() error) error {
	found, err := c.GetJSON(ctx, key, dest)
	if err == nil && found {
		middleware.CacheResults.WithLabelValues(family, "hit").Inc()
		return nil
	}
	middleware.CacheResults.WithLabelValues(family, "miss").Inc()

	if err := fetch(); err != nil {
		return err
	}

	_ = c.SetJSON(ctx, key, dest)
	return nil
}

// Invalidate deletes the given keys, best-effort.
func (c *Client) Invalidate(ctx context.Context, keys ...string) {
	if c.Available() && len(keys) > 0 {
		c.rdb.Del(ctx, keys...)
	}
}

// InvalidateBlog drops both the list cache and the detail entry of the given
// blog. Called synchronously on every write touching the blog's data, before
// the response is returned.
func (c *Client) InvalidateBlog(ctx context.Context, blogID uint) {
	c.Invalidate(ctx, BlogListKey, BlogKey(blogID))
}

// InvalidateBlogList drops only the list cache (blog creation).
func (c *Client) InvalidateBlogList(ctx context.Context) {
	c.Invalidate(ctx, BlogListKey)
}
