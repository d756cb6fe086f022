package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/lms-backend/internal/pkg/logger"
)

// RequestLogger logs one line per request with method, path, status and
// latency. Errors are logged by HandleAPIError; this stays at debug/info.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		event := logger.Info()
		if c.Writer.Status() >= 500 {
			event = logger.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("clientIp", c.ClientIP()).
			Msg("Request handled")
	}
}
