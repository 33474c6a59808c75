package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const defaultRateLimitRPS = 1

// RateLimitMiddleware shares one token bucket across every request routed
// through it. Requests beyond the burst are rejected with 429.
// rps <= 0 falls back to the default; burst <= 0 falls back to rps.
func RateLimitMiddleware(rps, burst int) gin.HandlerFunc {
	if rps <= 0 {
		rps = defaultRateLimitRPS
	}
	if burst <= 0 {
		burst = rps
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
