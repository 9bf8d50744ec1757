// File: services/planner/cache.go
package planner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"tripwise/utils"

	"github.com/go-redis/redis/v8"
)

// TranslationCache stores translated display projections so identical
// itineraries are not re-billed against the provider.
type TranslationCache interface {
	Get(ctx context.Context, key string) ([]string, bool)
	Set(ctx context.Context, key string, texts []string)
}

func translationKey(texts []string, targetLanguage string) string {
	sum := sha256.Sum256([]byte(strings.Join(texts, "\x1f")))
	return utils.TranslationCachePrefix + targetLanguage + ":" + hex.EncodeToString(sum[:])
}

type RedisTranslationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTranslationCache(client *redis.Client, ttl time.Duration) *RedisTranslationCache {
	return &RedisTranslationCache{client: client, ttl: ttl}
}

func (c *RedisTranslationCache) Get(ctx context.Context, key string) ([]string, bool) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	var texts []string
	if err := json.Unmarshal([]byte(data), &texts); err != nil {
		return nil, false
	}
	return texts, true
}

func (c *RedisTranslationCache) Set(ctx context.Context, key string, texts []string) {
	b, err := json.Marshal(texts)
	if err != nil {
		return
	}
	// Cache writes are best-effort; a miss just costs another provider call.
	_ = c.client.Set(ctx, key, b, c.ttl).Err()
}

// MemoryTranslationCache is the process-local variant, used when redis is
// not deployed.
type MemoryTranslationCache struct {
	mu      sync.RWMutex
	entries map[string][]string
}

func NewMemoryTranslationCache() *MemoryTranslationCache {
	return &MemoryTranslationCache{entries: make(map[string][]string)}
}

func (c *MemoryTranslationCache) Get(ctx context.Context, key string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	texts, ok := c.entries[key]
	return texts, ok
}

func (c *MemoryTranslationCache) Set(ctx context.Context, key string, texts []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = texts
}
