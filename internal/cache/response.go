// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

// response.go provides a Valkey-backed cache for public API responses.
// Rendered JSON bodies are stored per (site, path, query) so repeated reads
// skip the database entirely. Admin writes invalidate a whole site's keys;
// the short TTL covers anything written outside the admin API.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Amareteklay/adapticus-backend/internal/site"
)

const (
	// responseKeyPrefix is the Valkey key prefix for cached responses.
	responseKeyPrefix = "api:"

	// DefaultResponseTTL is how long a cached response stays valid.
	DefaultResponseTTL = 5 * time.Minute
)

// ResponseCache stores rendered JSON response bodies in Valkey.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Key builds the cache key for a request. The site comes first so all of a
// site's entries can be invalidated with one prefix scan.
func Key(s site.ID, path, rawQuery string) string {
	k := responseKeyPrefix + string(s) + ":" + path
	if rawQuery != "" {
		k += "?" + rawQuery
	}
	return k
}

// Get retrieves a cached response body. Returns false on miss or error;
// cache trouble degrades to a direct read, never to a failure.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if rc == nil {
		return nil, false
	}
	val, err := rc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores a response body with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, key string, body []byte) {
	if rc == nil {
		return
	}
	if err := rc.client.Set(ctx, key, body, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// InvalidateSite removes every cached response for a site by prefix scan.
// Called after admin writes so public readers see fresh content.
func (rc *ResponseCache) InvalidateSite(ctx context.Context, s site.ID) {
	if rc == nil {
		return
	}
	pattern := responseKeyPrefix + string(s) + ":*"
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Debug("response cache invalidated", "site", s, "deleted", deleted)
	}
}
