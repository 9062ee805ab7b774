package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/xslt-messages/internal/domain/dto"
	"github.com/guttosm/xslt-messages/internal/i18n"
)

const defaultNumShards = 16

// visitor is the fixed-window state of one client.
type visitor struct {
	tokens    int
	lastReset time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter is a fixed-window limiter sharded by client identifier.
type RateLimiter struct {
	shards   []*rateLimiterShard
	rate     int
	window   time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows rate requests per window and client.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter is NewRateLimiter with a custom shard count.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &RateLimiter{
		shards: shards,
		rate:   rate,
		window: window,
		stopCh: make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) shard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// allow consumes one token for identifier.
func (rl *RateLimiter) allow(identifier string, now time.Time) (allowed bool, remaining int, reset time.Time) {
	s := rl.shard(identifier)
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visitors[identifier]
	if !ok || now.Sub(v.lastReset) > rl.window {
		v = &visitor{tokens: rl.rate, lastReset: now}
		s.visitors[identifier] = v
	}
	reset = v.lastReset.Add(rl.window)

	if v.tokens <= 0 {
		return false, 0, reset
	}
	v.tokens--
	return true, v.tokens, reset
}

// RateLimit limits requests per API key, or per client IP for anonymous callers.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, reset := rl.allow(clientIdentifier(c), time.Now())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			retryAfter := int(math.Ceil(time.Until(reset).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

func clientIdentifier(c *gin.Context) string {
	if key := c.GetHeader(APIKeyHeader); key != "" {
		h := fnv.New64a()
		_, _ = h.Write([]byte(key))
		return "key:" + strconv.FormatUint(h.Sum64(), 16)
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

// cleanupExpired forgets clients idle for two windows.
func (rl *RateLimiter) cleanupExpired(now time.Time) {
	threshold := rl.window * 2
	for _, s := range rl.shards {
		s.mu.Lock()
		for id, v := range s.visitors {
			if now.Sub(v.lastReset) > threshold {
				delete(s.visitors, id)
			}
		}
		s.mu.Unlock()
	}
}

// Stop halts the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats returns the number of tracked clients, in total and per shard.
func (rl *RateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, s := range rl.shards {
		s.mu.Lock()
		perShard[i] = len(s.visitors)
		s.mu.Unlock()
		total += perShard[i]
	}
	return total, perShard
}
