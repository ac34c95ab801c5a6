package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenCache is a small Redis-backed string cache for short-lived access
// tokens, such as the Zoom server-to-server OAuth token.
type TokenCache struct {
	client redis.UniversalClient
	prefix string
}

// NewTokenCache creates a token cache with the given key prefix.
func NewTokenCache(client redis.UniversalClient, prefix string) *TokenCache {
	if prefix == "" {
		prefix = "token:"
	}
	return &TokenCache{client: client, prefix: prefix}
}

// Get returns the cached token, or ErrNotFound when absent or expired.
func (c *TokenCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

// Set stores the token with the given TTL.
func (c *TokenCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.New("ttl must be positive")
	}
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}
