package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"shipping-bridge.backend/pkg/logger"
)

// LoggerMiddleware emits one structured access-log line per request.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.LogRequest(c, c.Request.Method, path, c.Writer.Status(),
			time.Since(start), c.ClientIP())
	}
}
