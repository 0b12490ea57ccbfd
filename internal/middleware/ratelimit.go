package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/convertly/convertly-api/internal/constants"
	"github.com/convertly/convertly-api/internal/logger"
)

const (
	defaultCleanupInterval = 5 * time.Minute
	limiterIdleTTL         = 10 * time.Minute
)

// RateLimiter applies a token bucket per client. Idle buckets are dropped by
// a background sweep that runs until Stop.
type RateLimiter struct {
	limiters        sync.Map
	rate            float64
	burst           int
	cleanupInterval time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess atomic.Int64
}

func (e *limiterEntry) touch(now time.Time) {
	e.lastAccess.Store(now.UnixNano())
}

// NewRateLimiter creates a limiter allowing requestsPerSecond with the given
// burst and starts its cleanup loop.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return newRateLimiter(requestsPerSecond, burst, defaultCleanupInterval)
}

func newRateLimiter(requestsPerSecond float64, burst int, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		rate:            requestsPerSecond,
		burst:           burst,
		cleanupInterval: cleanupInterval,
		stopCh:          make(chan struct{}),
	}
	rl.wg.Add(1)
	go rl.cleanup()
	return rl
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stopCh)
	})
	rl.wg.Wait()
}

func (rl *RateLimiter) cleanup() {
	defer rl.wg.Done()

	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			rl.sweep(now, limiterIdleTTL)
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) sweep(now time.Time, ttl time.Duration) int {
	removed := 0
	rl.limiters.Range(func(key, value interface{}) bool {
		entry := value.(*limiterEntry)
		if now.Sub(time.Unix(0, entry.lastAccess.Load())) > ttl {
			rl.limiters.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := time.Now()
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.touch(now)
		return entry.limiter
	}

	entry := &limiterEntry{limiter: rate.NewLimiter(rate.Limit(rl.rate), rl.burst)}
	entry.touch(now)
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

// getClientIdentifier keys buckets by the first X-Forwarded-For hop, falling
// back to the peer address.
func getClientIdentifier(c *gin.Context) string {
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		first := strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
		if first != "" {
			return "ip:" + first
		}
	}
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = "unknown"
	}
	return "ip:" + clientIP
}

// Middleware rejects requests over the client's budget with 429. Health
// checks are never limited.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	limit := fmt.Sprintf("%g", rl.rate)
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/healthz" {
			c.Next()
			return
		}

		clientID := getClientIdentifier(c)
		limiter := rl.getLimiter(clientID)
		reset := fmt.Sprintf("%d", time.Now().Add(time.Second).Unix())

		if !limiter.Allow() {
			logger.Log.Warn("Rate limit exceeded",
				zap.String("client_id", clientID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.String("correlation_id", GetCorrelationID(c)),
			)

			c.Header("X-RateLimit-Limit", limit)
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", reset)
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       constants.TooManyRequests,
				"retry_after": 1,
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", reset)

		c.Next()
	}
}
