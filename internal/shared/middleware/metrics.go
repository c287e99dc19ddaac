package middleware

import (
	"github.com/gin-gonic/gin"

	"catalog-review-backend/internal/infrastructure/metrics"
)

// Metrics records request count, latency and in-flight requests per route
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		done := metrics.StartRequest()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		done(c.Request.Method, path, c.Writer.Status())
	}
}
