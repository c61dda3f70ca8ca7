package middleware

import (
	"github.com/dashboard/backend/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

// unmatchedRoute labels requests that matched no route, so raw paths never
// become label values.
const unmatchedRoute = "unmatched"

// Metrics records request count, latency and in-flight requests per route.
func Metrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := m.Start()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		done(c.Request.Method, route, c.Writer.Status())
	}
}
