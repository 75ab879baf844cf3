package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// rateLimiter tracks one token bucket per client IP. Buckets idle for longer
// than the expiry window are evicted.
type rateLimiter struct {
	perMin   int
	limiters *expirable.LRU[string, *rate.Limiter]
}

func newRateLimiter(perMin int) *rateLimiter {
	if perMin <= 0 {
		return nil
	}
	return &rateLimiter{
		perMin:   perMin,
		limiters: expirable.NewLRU[string, *rate.Limiter](1024, nil, 10*time.Minute),
	}
}

func (rl *rateLimiter) allow(clientIP string) bool {
	limiter, ok := rl.limiters.Get(clientIP)
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(float64(rl.perMin)/60.0), rl.perMin)
		rl.limiters.Add(clientIP, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles requests per client IP. A nil limiter (configured 0)
// makes this a pass-through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		if !m.limiter.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "Too many requests"})
			return
		}
		c.Next()
	}
}
