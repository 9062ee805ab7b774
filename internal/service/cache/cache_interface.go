// Package cache defines the contract of the resolved-message cache.
package cache

// Cache stores values under string keys.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics reports cache effectiveness.
type Metrics struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
}

// HitRatio returns hits over total reads, or zero before the first read.
func (m Metrics) HitRatio() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total)
}

// CacheWithMetrics is a Cache that reports Metrics.
type CacheWithMetrics[V any] interface {
	Cache[V]
	Metrics() Metrics
}
