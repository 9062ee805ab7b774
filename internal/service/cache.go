// Package service resolves catalog messages for the HTTP layer and records
// lookups for the audit trail.
package service

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/xslt-messages/internal/metrics"
	"github.com/guttosm/xslt-messages/internal/service/cache"
)

var (
	cachedTime     atomic.Value
	cachedTimeOnce sync.Once
)

func init() {
	initCachedTime()
}

// initCachedTime starts a ticker that refreshes the clock read by now.
func initCachedTime() {
	cachedTimeOnce.Do(func() {
		cachedTime.Store(time.Now())
		go func() {
			ticker := time.NewTicker(100 * time.Millisecond)
			for t := range ticker.C {
				cachedTime.Store(t)
			}
		}()
	})
}

// now returns a clock that may lag by up to 100ms. Good enough for expiry stamps.
func now() time.Time {
	if t, ok := cachedTime.Load().(time.Time); ok {
		return t
	}
	return time.Now()
}

// ShardedCache spreads entries across independently locked LRU shards.
type ShardedCache[V any] struct {
	shards    []*ttlCache[V]
	shardMask uint32
}

// NewShardedCache creates a cache holding about capacity entries for ttl.
// numShards is rounded up to a power of two; zero or less means 16.
func NewShardedCache[V any](capacity int, ttl time.Duration, numShards int) *ShardedCache[V] {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*ttlCache[V], n)
	for i := range shards {
		shards[i] = newTTLCache[V](perShard, ttl)
	}

	return &ShardedCache[V]{
		shards:    shards,
		shardMask: uint32(n - 1),
	}
}

func (sc *ShardedCache[V]) shard(key string) *ttlCache[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return sc.shards[h.Sum32()&sc.shardMask]
}

// Get returns the cached value for key.
func (sc *ShardedCache[V]) Get(key string) (V, bool) {
	return sc.shard(key).Get(key)
}

// Set stores value under key.
func (sc *ShardedCache[V]) Set(key string, value V) {
	sc.shard(key).Set(key, value)
}

// Invalidate removes key.
func (sc *ShardedCache[V]) Invalidate(key string) {
	sc.shard(key).Invalidate(key)
}

// Clear empties every shard.
func (sc *ShardedCache[V]) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
}

// Stop halts the cleanup goroutines.
func (sc *ShardedCache[V]) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics sums the metrics of every shard.
func (sc *ShardedCache[V]) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is one LRU shard whose entries also expire after ttl.
type ttlCache[V any] struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry[V]
	head      *cacheEntry[V]
	tail      *cacheEntry[V]
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type cacheEntry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	prev      *cacheEntry[V]
	next      *cacheEntry[V]
}

func newTTLCache[V any](capacity int, ttl time.Duration) *ttlCache[V] {
	c := &ttlCache[V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry[V], capacity),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Stop halts the cleanup goroutine. It is safe to call more than once.
func (c *ttlCache[V]) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns the shard's counters.
func (c *ttlCache[V]) Metrics() cache.Metrics {
	c.mu.Lock()
	size := len(c.items)
	c.mu.Unlock()

	return cache.Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      size,
		Capacity:  c.capacity,
	}
}

// Get returns the value for key unless it is absent or expired.
func (c *ttlCache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	entry, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "miss")
		return zero, false
	}

	// Exact clock here; the cached one may be stale.
	if time.Now().After(entry.expiresAt) {
		c.removeEntry(entry)
		c.mu.Unlock()
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "expired")
		return zero, false
	}

	c.moveToFront(entry)
	value := entry.value
	c.mu.Unlock()

	c.hits.Add(1)
	metrics.RecordCacheOperation("get", "hit")
	return value, true
}

// Set inserts or refreshes key, evicting the least recently used entry when full.
func (c *ttlCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry[V]{
		key:       key,
		value:     value,
		expiresAt: now().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeTail()
		c.evictions.Add(1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// startCleanup sweeps expired entries once a minute while the shard is over 80% full.
func (c *ttlCache[V]) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			full := len(c.items) > c.capacity*80/100
			c.mu.Unlock()
			if full {
				c.cleanup()
			}
		case <-c.stopCh:
			return
		}
	}
}

func (c *ttlCache[V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := time.Now()
	for _, entry := range c.items {
		if current.After(entry.expiresAt) {
			c.removeEntry(entry)
		}
	}
}

func (c *ttlCache[V]) removeEntry(entry *cacheEntry[V]) {
	delete(c.items, entry.key)
	c.unlink(entry)
}

func (c *ttlCache[V]) moveToFront(entry *cacheEntry[V]) {
	if entry == c.head {
		return
	}
	c.unlink(entry)
	c.addToFront(entry)
}

func (c *ttlCache[V]) addToFront(entry *cacheEntry[V]) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *ttlCache[V]) unlink(entry *cacheEntry[V]) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev, entry.next = nil, nil
}

func (c *ttlCache[V]) removeTail() {
	if c.tail == nil {
		return
	}
	c.removeEntry(c.tail)
}

// Invalidate removes key.
func (c *ttlCache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear removes every entry and resets the counters.
func (c *ttlCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*cacheEntry[V], c.capacity)
	c.head = nil
	c.tail = nil
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)

	metrics.RecordCacheOperation("clear", "success")
}

var (
	_ cache.CacheWithMetrics[int] = (*ShardedCache[int])(nil)
	_ cache.CacheWithMetrics[int] = (*ttlCache[int])(nil)
)
