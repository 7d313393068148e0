package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"upravdom/internal/shared/utils"
)

// RateLimiter enforces per-IP fixed-window request limits. Counters
// live in process memory, so limits apply per instance.
type RateLimiter struct {
	mu     sync.Mutex
	counts map[string]int
	bucket int64
	limit  int
	window time.Duration
}

// NewRateLimiter creates a rate limiter allowing limit requests per
// window for each client IP.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counts: make(map[string]int),
		limit:  limit,
		window: window,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		bucket := time.Now().Unix() / int64(rl.window.Seconds())

		rl.mu.Lock()
		if bucket != rl.bucket {
			rl.bucket = bucket
			rl.counts = make(map[string]int)
		}
		rl.counts[clientIP]++
		count := rl.counts[clientIP]
		rl.mu.Unlock()

		if count > rl.limit {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
