package middleware

import (
	"sync"

	"main/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware limits requests per client IP, used on the auth
// routes to slow down credential stuffing.
func RateLimitMiddleware(r rate.Limit, burst int) gin.HandlerFunc {
	limiter := &ipLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     r,
		burst:    burst,
	}

	return func(c *gin.Context) {
		if !limiter.get(c.ClientIP()).Allow() {
			utils.TrackError("http", "rate_limited")
			utils.TooManyRequests(c, "Too many requests, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
