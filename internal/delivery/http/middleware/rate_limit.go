package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"ahkii-burger-backend/internal/delivery/http/response"
	"ahkii-burger-backend/pkg/logger"
	"ahkii-burger-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for per-client rate limiting.
type RateLimitConfig struct {
	// Requests allowed per window
	Limit int
	// Window duration
	Window time.Duration
	// Key prefix for Redis counters
	KeyPrefix string
}

// ContactRateLimitConfig limits contact form submissions. The contact
// endpoint is the only public write surface, so it gets a strict budget.
func ContactRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:contact:",
	}
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// Atomic increment with TTL set on first hit.
// KEYS[1] = counter key, ARGV[1] = TTL seconds. Returns the count.
const rateLimitScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// startCleanup prunes expired in-memory entries in the background.
func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// RateLimit limits requests per client IP. Counters live in Redis when it
// is configured so multiple instances share a budget; otherwise an
// in-memory fallback covers the single-instance case. Fails open: a Redis
// error never blocks a legitimate visitor.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		var count int
		if rdb := redis.Client(); rdb != nil {
			n, err := redisIncrement(c.Request.Context(), rdb, key, cfg.Window)
			if err != nil {
				logger.Log.Warn("rate limit: redis unavailable, using in-memory fallback", "error", err.Error())
				count = memoryIncrement(key, cfg.Window)
			} else {
				count = n
			}
		} else {
			count = memoryIncrement(key, cfg.Window)
		}

		remaining := cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > cfg.Limit {
			c.Header("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func redisIncrement(ctx context.Context, rdb *goredis.Client, key string, window time.Duration) (int, error) {
	res, err := rdb.Eval(ctx, rateLimitScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		return 0, err
	}
	n, ok := res.(int64)
	if !ok {
		return 0, nil
	}
	return int(n), nil
}

func memoryIncrement(key string, window time.Duration) int {
	now := time.Now()
	value, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
	entry := value.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count
}
