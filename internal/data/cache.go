package data

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	"plant-econ/internal/model"
)

// CacheEntry represents a cached price series.
type CacheEntry struct {
	Series    model.PriceSeries
	ExpiresAt time.Time
}

// PriceCache provides in-memory caching for EIA API responses, so repeated
// backcast runs over the same range don't burn quota. Development only: it is
// disabled unless ENABLE_EIA_CACHE=true, and always disabled when
// API_ENV=production.
type PriceCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
}

var globalCache *PriceCache
var cacheOnce sync.Once

// GetCache returns the global cache instance if caching is enabled,
// nil otherwise.
func GetCache() *PriceCache {
	if os.Getenv("ENABLE_EIA_CACHE") != "true" {
		return nil
	}
	if os.Getenv("API_ENV") == "production" {
		return nil
	}

	cacheOnce.Do(func() {
		ttl := 1 * time.Hour
		if ttlStr := os.Getenv("EIA_CACHE_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				ttl = parsed
			}
		}

		globalCache = &PriceCache{
			store: make(map[string]*CacheEntry),
			ttl:   ttl,
		}

		go globalCache.cleanup()
	})

	return globalCache
}

// Get retrieves a cached series if available and not expired.
func (c *PriceCache) Get(key string) (model.PriceSeries, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Series, true
}

// Set stores a series in the cache.
func (c *PriceCache) Set(key string, series model.PriceSeries) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &CacheEntry{
		Series:    series,
		ExpiresAt: time.Now().Add(c.ttl),
	}
}

// Clear removes all entries from the cache.
func (c *PriceCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry)
}

func (c *PriceCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, entry := range c.store {
			if now.After(entry.ExpiresAt) {
				delete(c.store, key)
			}
		}
		c.mu.Unlock()
	}
}

// GenerateCacheKey creates a cache key from query parameters.
func GenerateCacheKey(params QueryParams) string {
	keyStr := fmt.Sprintf("%s:%s:%s",
		params.Region,
		params.StartTime.Format(hourLayout),
		params.EndTime.Format(hourLayout),
	)
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
