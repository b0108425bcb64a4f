package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"cadastro/internal/core/telemetry"
)

func MetricsMiddleware(metrics *telemetry.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		metrics.IncrementActiveConnections(c.Request.Context())
		defer metrics.DecrementActiveConnections(c.Request.Context())

		c.Next()

		path := c.FullPath()

		if path == "" {
			path = "unmatched"
		}

		metrics.RecordRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
