// README: Request logging middleware.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"rideapp/internal/logger"
)

func Logging(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if uid := CallerUID(c); uid != "" {
			args = append(args, "uid", uid)
		}
		if c.Writer.Status() >= 500 {
			log.Action("http_request").Warn("request failed", args...)
			return
		}
		log.Action("http_request").Info("request handled", args...)
	}
}
