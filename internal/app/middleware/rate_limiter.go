package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/code"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/response"
)

// tokenBucket 简单的令牌桶限流器
type tokenBucket struct {
	rate       float64 // 每秒填充的令牌数
	capacity   int
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(rate float64, capacity int) *tokenBucket {
	return &tokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow 尝试获取一个令牌
func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

// limiterRegistry 按键存放限流器，键可以是IP或IP+路径
type limiterRegistry struct {
	mu       sync.RWMutex
	limiters map[string]*tokenBucket
}

var registry = &limiterRegistry{
	limiters: make(map[string]*tokenBucket),
}

func (r *limiterRegistry) get(key string, rate float64, burst int) *tokenBucket {
	r.mu.RLock()
	limiter, exists := r.limiters[key]
	r.mu.RUnlock()

	if !exists {
		limiter = newTokenBucket(rate, burst)
		r.mu.Lock()
		r.limiters[key] = limiter
		r.mu.Unlock()
	}

	return limiter
}

// 空闲超过1小时的限流器定期回收
func init() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			cutoff := time.Now().Add(-1 * time.Hour)
			registry.mu.Lock()
			for key, limiter := range registry.limiters {
				limiter.mu.Lock()
				idle := limiter.lastRefill.Before(cutoff)
				limiter.mu.Unlock()
				if idle {
					delete(registry.limiters, key)
				}
			}
			registry.mu.Unlock()
		}
	}()
}

// IPRateLimiter 按客户端IP限流
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := registry.get(c.ClientIP(), rate, burst)
		if !limiter.allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "请求频率过高，请稍后再试", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CombinedRateLimiter 按IP和路径组合限流，
// 用于报告生成这类开销较大的接口
func CombinedRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.Request.URL.Path
		limiter := registry.get(key, rate, burst)
		if !limiter.allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "请求频率过高，请稍后再试", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
