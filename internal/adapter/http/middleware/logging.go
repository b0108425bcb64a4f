package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ct "cadastro/pkg/context"
	"cadastro/pkg/logger"
)

func LoggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		current := GetCurrent(c)
		clientIP, _ := current.GetString(ct.IPAddressKey)
		userAgent, _ := current.GetString(ct.UserAgentKey)

		// request_id is added by the logger from the request context
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", clientIP),
			zap.String("user_agent", userAgent),
		}

		ctx := c.Request.Context()

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.ErrorWithTrace(ctx, "HTTP Request", append(fields, zap.String("errors", c.Errors.String()))...)
		case status >= 400:
			log.WarnWithTrace(ctx, "HTTP Request", fields...)
		default:
			log.InfoWithTrace(ctx, "HTTP Request", fields...)
		}
	}
}
