//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/xslt-messages/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShardedRateLimiter(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{name: "default when zero", numShards: 0, wantShards: defaultNumShards},
		{name: "default when negative", numShards: -3, wantShards: defaultNumShards},
		{name: "custom", numShards: 4, wantShards: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(10, time.Minute, tt.numShards)
			defer rl.Stop()
			assert.Len(t, rl.shards, tt.wantShards)
		})
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()
	now := time.Now()

	ok, remaining, _ := rl.allow("ip:1", now)
	assert.True(t, ok)
	assert.Equal(t, 1, remaining)

	ok, remaining, _ = rl.allow("ip:1", now)
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)

	ok, _, reset := rl.allow("ip:1", now)
	assert.False(t, ok)
	assert.Equal(t, now.Add(time.Minute), reset)

	ok, _, _ = rl.allow("ip:2", now)
	assert.True(t, ok, "other clients have their own window")

	ok, remaining, _ = rl.allow("ip:1", now.Add(time.Minute+time.Second))
	assert.True(t, ok, "window resets")
	assert.Equal(t, 1, remaining)
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(RequestID(), rl.RateLimit())
	router.GET("/api/keys", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(apiKey string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/keys", nil)
		if apiKey != "" {
			req.Header.Set(APIKeyHeader, apiKey)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := send("")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := send("")
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	retry, err := strconv.Atoi(second.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, retry, 1)
	assert.LessOrEqual(t, retry, 60)
	assert.Equal(t, dto.ErrCodeRateLimit, decodeError(t, second).Error)

	assert.Equal(t, http.StatusOK, send("key-a").Code, "API keys are limited separately from the IP")
}

func TestRateLimiter_CleanupAndStats(t *testing.T) {
	rl := NewShardedRateLimiter(5, time.Second, 2)
	defer rl.Stop()
	now := time.Now()

	rl.allow("a", now)
	rl.allow("b", now)
	total, perShard := rl.Stats()
	assert.Equal(t, 2, total)
	assert.Len(t, perShard, 2)

	rl.cleanupExpired(now.Add(3 * time.Second))
	total, _ = rl.Stats()
	assert.Zero(t, total)
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}
