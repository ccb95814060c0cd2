// README: Recovery middleware turning handler panics into 500s.
package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"rideapp/internal/logger"
)

func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("handler panic", fmt.Errorf("%v", r), "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}
