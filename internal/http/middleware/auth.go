// README: Auth middleware verifying Firebase ID tokens from the Authorization header.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rideapp/internal/infra"
)

const callerKey = "caller"

// Auth rejects requests without a valid "Bearer <id token>". A nil verifier
// lets every request through.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		caller, err := verifier.Verify(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

// CallerUID returns the verified caller's uid, or "" when auth is off.
func CallerUID(c *gin.Context) string {
	v, ok := c.Get(callerKey)
	if !ok {
		return ""
	}
	if caller, ok := v.(*infra.Caller); ok && caller != nil {
		return caller.UID
	}
	return ""
}
