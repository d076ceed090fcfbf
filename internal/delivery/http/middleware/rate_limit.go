package middleware

import (
	"net/http"
	"sync"
	"time"

	"hrms-backend/internal/delivery/http/response"
	"hrms-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting.
type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
}

// rateLimitEntry tracks request count for a key (in-memory fallback).
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// LoginRateLimit throttles credential-exchange endpoints per client IP.
// Counters live in redis when a client is provided, otherwise in process
// memory. Redis errors do not block requests.
func LoginRateLimit(rdb *goredis.Client, cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limit <= 0 {
		cfg.Limit = 10
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "rl:login:"
	}

	var (
		store     sync.Map
		sweepMu   sync.Mutex
		nextSweep = time.Now().Add(cfg.Window)
	)

	// sweep drops entries whose window has passed so the map does not grow
	// with every distinct client IP ever seen.
	sweep := func(now time.Time) {
		sweepMu.Lock()
		defer sweepMu.Unlock()
		if now.Before(nextSweep) {
			return
		}
		nextSweep = now.Add(cfg.Window)
		store.Range(func(key, value any) bool {
			entry := value.(*rateLimitEntry)
			entry.mu.Lock()
			expired := now.After(entry.resetAt)
			entry.mu.Unlock()
			if expired {
				store.Delete(key)
			}
			return true
		})
	}

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		var over bool
		if rdb != nil {
			count, err := rdb.Incr(c.Request.Context(), key).Result()
			if err != nil {
				logger.Log.Warn("rate limit redis unavailable", "error", err)
			} else {
				if count == 1 {
					rdb.Expire(c.Request.Context(), key, cfg.Window)
				}
				over = count > int64(cfg.Limit)
			}
		} else {
			now := time.Now()
			value, _ := store.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(cfg.Window)})
			entry := value.(*rateLimitEntry)
			entry.mu.Lock()
			if now.After(entry.resetAt) {
				entry.count = 0
				entry.resetAt = now.Add(cfg.Window)
			}
			entry.count++
			over = entry.count > cfg.Limit
			entry.mu.Unlock()
			sweep(now)
		}

		if over {
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
