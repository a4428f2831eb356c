package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"schedule-board/pkg/response"
)

// ExtractRateLimit guards the image extraction endpoint with the
// configured token bucket. Every request there costs a model call.
func (m Middleware) ExtractRateLimit() gin.HandlerFunc {
	return m.RateLimit(m.config.Schedule.ExtractRPS, m.config.Schedule.ExtractBurst)
}

// RateLimit caps a route's throughput with a token bucket.
func (m Middleware) RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: rejected %s %s", c.Request.Method, c.Request.URL.Path)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
