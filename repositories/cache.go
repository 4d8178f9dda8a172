package repositories

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

// Cache is the cache-aside store used by the repositories. A nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

const queryTimeout = 5 * time.Second

// loadCached decodes the value stored under key into dest and reports whether it was found.
// Cache failures are logged and treated as a miss.
func loadCached(ctx context.Context, c Cache, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	cached, err := c.Get(ctx, key)
	if err != nil {
		log.Printf("Failed to get %s from cache: %v", key, err)
		return false
	}
	if cached == "" {
		return false
	}
	if err := json.Unmarshal([]byte(cached), dest); err != nil {
		log.Printf("Failed to decode cached %s: %v", key, err)
		return false
	}
	return true
}

func storeCached(ctx context.Context, c Cache, key string, value interface{}, ttl time.Duration) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Failed to marshal %s for cache: %v", key, err)
		return
	}
	if err := c.Set(ctx, key, data, ttl); err != nil {
		log.Printf("Failed to set %s in cache: %v", key, err)
	}
}

func dropCached(ctx context.Context, c Cache, key string) {
	if c == nil {
		return
	}
	if err := c.Delete(ctx, key); err != nil {
		log.Printf("Failed to delete %s from cache: %v", key, err)
	}
}
