package routes

import (
	"strconv"

	"leaseflow/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// requestMetrics counts finished requests by method, route template and
// status. The route template (not the raw path) keeps cardinality bounded.
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
