package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plant-econ/internal/model"
)

func TestGetCacheDisabledByDefault(t *testing.T) {
	t.Setenv("ENABLE_EIA_CACHE", "")
	assert.Nil(t, GetCache())
}

func TestGetCacheDisabledInProduction(t *testing.T) {
	t.Setenv("ENABLE_EIA_CACHE", "true")
	t.Setenv("API_ENV", "production")
	assert.Nil(t, GetCache())
}

func TestPriceCacheSetGet(t *testing.T) {
	c := &PriceCache{store: make(map[string]*CacheEntry), ttl: time.Hour}
	series := model.PriceSeries{{Timestamp: time.Now(), Price: 42}}

	c.Set("k", series)
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, series, got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestPriceCacheExpiry(t *testing.T) {
	c := &PriceCache{store: make(map[string]*CacheEntry), ttl: -time.Second}
	c.Set("k", model.PriceSeries{})

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestPriceCacheNilSafe(t *testing.T) {
	var c *PriceCache
	c.Set("k", nil)
	c.Clear()
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestGenerateCacheKeyStable(t *testing.T) {
	p := testParams()
	assert.Equal(t, GenerateCacheKey(p), GenerateCacheKey(p))

	q := p
	q.Region = "PJM"
	assert.NotEqual(t, GenerateCacheKey(p), GenerateCacheKey(q))
}
