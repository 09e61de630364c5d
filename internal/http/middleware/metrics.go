package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/orbital-nexus-backend/internal/observability"
)

// unobservedRoutes are kept out of the API series: the scrape itself, and the WebSocket
// upgrade whose duration is the lifetime of the connection.
var unobservedRoutes = map[string]bool{
	"/metrics": true,
	"/ws":      true,
}

// Metrics records request count, latency and inflight gauge per matched route.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if unobservedRoutes[c.FullPath()] {
			c.Next()
			return
		}
		start := time.Now()
		m.ApiInflightInc()
		defer m.ApiInflightDec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveAPI(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
