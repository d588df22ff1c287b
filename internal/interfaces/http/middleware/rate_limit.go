package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"payme.backend/pkg/logger"
)

const (
	// DefaultMaxRequests is the per-client request budget per window
	DefaultMaxRequests = 60
	// DefaultWindow is the sliding window length
	DefaultWindow = 60 * time.Second

	sweepInterval = time.Minute
)

// RateLimiter bounds the request rate per client with a sliding window of
// request timestamps. State lives only in this process: it resets on restart
// and is not shared across instances.
type RateLimiter struct {
	maxRequests int
	window      time.Duration
	now         func() time.Time

	mu       sync.Mutex
	requests map[string][]time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a rate limiter. Non-positive arguments fall back to
// the defaults.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		requests:    make(map[string][]time.Time),
		stop:        make(chan struct{}),
	}
}

// SetClock overrides the time source (used for testing)
func (rl *RateLimiter) SetClock(now func() time.Time) {
	rl.now = now
}

// Allow records a request for the client and reports whether it is within
// the limit. A rejected request is not recorded. The prune-check-append
// sequence runs under one lock so two concurrent requests cannot both slip
// under the limit.
func (rl *RateLimiter) Allow(client string) bool {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	kept := rl.requests[client][:0]
	for _, t := range rl.requests[client] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= rl.maxRequests {
		rl.requests[client] = kept
		return false
	}

	rl.requests[client] = append(kept, now)
	return true
}

// Middleware gates requests before they reach business logic
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		client := c.ClientIP()
		if client == "" {
			client = "unknown"
		}

		if !rl.Allow(client) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded, try again later",
			})
			return
		}

		c.Next()
	}
}

// Start runs a background sweep that drops client buckets with no activity
// inside the current window, so the map does not grow without bound.
func (rl *RateLimiter) Start(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-rl.stop:
			return
		case <-ticker.C:
			evicted := rl.sweep()
			if evicted > 0 {
				logger.Debug(ctx, "rate limiter swept idle clients")
			}
		}
	}
}

// Stop terminates the background sweep
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) sweep() int {
	cutoff := rl.now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	evicted := 0
	for client, times := range rl.requests {
		idle := true
		for _, t := range times {
			if t.After(cutoff) {
				idle = false
				break
			}
		}
		if idle {
			delete(rl.requests, client)
			evicted++
		}
	}
	return evicted
}
