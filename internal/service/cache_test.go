//go:build !integration

package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/xslt-messages/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func result(key, template string) catalog.Result {
	return catalog.Result{
		Key:       key,
		Template:  template,
		Requested: language.English,
		Locale:    language.English,
		Status:    catalog.StatusFound,
	}
}

func TestTTLCache_Get(t *testing.T) {
	tests := []struct {
		name      string
		setup     func() *ttlCache[catalog.Result]
		key       string
		want      catalog.Result
		wantFound bool
	}{
		{
			name: "returns value when present",
			setup: func() *ttlCache[catalog.Result] {
				c := newTTLCache[catalog.Result](10, time.Minute)
				c.Set("en|ER_NO_CURLYBRACE", result("ER_NO_CURLYBRACE", "Error: Can not have '{' within expression"))
				return c
			},
			key:       "en|ER_NO_CURLYBRACE",
			want:      result("ER_NO_CURLYBRACE", "Error: Can not have '{' within expression"),
			wantFound: true,
		},
		{
			name: "returns false when absent",
			setup: func() *ttlCache[catalog.Result] {
				return newTTLCache[catalog.Result](10, time.Minute)
			},
			key: "en|NOPE",
		},
		{
			name: "returns false when expired",
			setup: func() *ttlCache[catalog.Result] {
				c := newTTLCache[catalog.Result](10, 50*time.Millisecond)
				c.Set("en|BAD_CODE", result("BAD_CODE", "x"))
				time.Sleep(100 * time.Millisecond)
				return c
			},
			key: "en|BAD_CODE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.setup()
			defer c.Stop()

			got, found := c.Get(tt.key)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTTLCache_Eviction(t *testing.T) {
	c := newTTLCache[string](3, time.Minute)
	defer c.Stop()

	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")

	// "a" becomes least recently used.
	c.Get("b")
	c.Get("c")
	c.Set("d", "4")

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	_, okD := c.Get("d")
	assert.False(t, okA)
	assert.True(t, okB)
	assert.True(t, okD)
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestTTLCache_MoveToFront(t *testing.T) {
	c := newTTLCache[string](3, time.Minute)
	defer c.Stop()

	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")
	c.Get("a")
	c.Set("d", "4")

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	assert.True(t, okA, "accessed entry kept")
	assert.False(t, okB, "least recently used entry evicted")
}

func TestTTLCache_UpdateExistingEntry(t *testing.T) {
	c := newTTLCache[string](2, time.Minute)
	defer c.Stop()

	c.Set("a", "old")
	c.Set("a", "new")
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "new", got)
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_Cleanup(t *testing.T) {
	c := newTTLCache[string](10, 50*time.Millisecond)
	defer c.Stop()

	c.Set("a", "1")
	c.Set("b", "2")
	time.Sleep(200 * time.Millisecond)
	c.cleanup()

	assert.Equal(t, 0, c.Metrics().Size)
}

func TestTTLCache_MetricsAndClear(t *testing.T) {
	c := newTTLCache[string](10, time.Minute)
	defer c.Stop()

	c.Set("a", "1")
	c.Get("a")
	c.Get("missing")

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
	assert.Equal(t, 10, m.Capacity)

	c.Clear()
	m = c.Metrics()
	assert.Zero(t, m.Hits)
	assert.Zero(t, m.Size)
}

func TestTTLCache_StopTwice(t *testing.T) {
	c := newTTLCache[string](1, time.Minute)
	assert.NotPanics(t, func() {
		c.Stop()
		c.Stop()
	})
}

func TestNewShardedCache(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{name: "default when zero", numShards: 0, wantShards: 16},
		{name: "default when negative", numShards: -1, wantShards: 16},
		{name: "rounds 3 up to 4", numShards: 3, wantShards: 4},
		{name: "keeps power of two", numShards: 8, wantShards: 8},
		{name: "rounds 5 up to 8", numShards: 5, wantShards: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewShardedCache[string](100, time.Minute, tt.numShards)
			defer c.Stop()

			assert.Len(t, c.shards, tt.wantShards)
			assert.Equal(t, uint32(tt.wantShards-1), c.shardMask)
		})
	}
}

func TestShardedCache_Operations(t *testing.T) {
	c := NewShardedCache[catalog.Result](64, time.Minute, 4)
	defer c.Stop()

	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("de|KEY_%d", i)
		c.Set(key, result(key, "t"))
	}

	got, ok := c.Get("de|KEY_7")
	require.True(t, ok)
	assert.Equal(t, "de|KEY_7", got.Key)

	c.Invalidate("de|KEY_7")
	_, ok = c.Get("de|KEY_7")
	assert.False(t, ok)

	m := c.Metrics()
	assert.Equal(t, 19, m.Size)
	assert.Equal(t, 64, m.Capacity)
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)

	c.Clear()
	assert.Equal(t, 0, c.Metrics().Size)
}

func TestShardedCache_SameKeySameShard(t *testing.T) {
	c := NewShardedCache[string](64, time.Minute, 8)
	defer c.Stop()

	assert.Same(t, c.shard("ja|ER_CANNOT_ADD"), c.shard("ja|ER_CANNOT_ADD"))
}

func TestShardedCache_Concurrency(t *testing.T) {
	c := NewShardedCache[string](1000, time.Minute, 16)
	defer c.Stop()

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				key := fmt.Sprintf("%d|%d", g, i)
				c.Set(key, key)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	assert.Greater(t, c.Metrics().Size, 0)
}
