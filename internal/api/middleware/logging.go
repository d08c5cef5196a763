// Package middleware provides Gin middleware for the panel API.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SlogRequestLogger logs each API request with method, path, status and
// latency. Server errors are logged at warn level so poll noise stays at
// info. A nil logger disables logging without disturbing the chain.
func SlogRequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		if logger == nil {
			return
		}

		status := c.Writer.Status()
		attrs := []any{
			"method", method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		if status >= http.StatusInternalServerError {
			logger.Warn("api request failed", attrs...)
			return
		}
		logger.Info("api request", attrs...)
	}
}
