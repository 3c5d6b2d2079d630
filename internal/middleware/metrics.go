package middleware

import (
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/JamilPr1/whatsapp-booking-system/internal/observability"
)

// Metrics records per-request counters and latency, labeled by route
// template rather than raw path to keep cardinality bounded.
func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		observability.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		observability.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
	}
}
