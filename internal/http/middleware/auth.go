package middleware

import (
	"net/http"
	"strings"

	"lab_downtime_server/internal/auth"
	"lab_downtime_server/pkg/colors"

	"github.com/gin-gonic/gin"
)

// AdminSessionMiddleware validates the Bearer session token against the
// in-memory session store and puts the session into the request context.
// Failure bodies stay generic: a missing, wrong, or expired token all
// read the same to the caller.
func AdminSessionMiddleware(sessions *auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			colors.PrintWarning("Admin access denied: No Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized",
				"message": "Admin session required",
			})
			c.Abort()
			return
		}

		// Extract token from Bearer token format
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			colors.PrintWarning("Admin access denied: Invalid Authorization header format")
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized",
				"message": "Admin session required",
			})
			c.Abort()
			return
		}

		session, ok := sessions.Validate(tokenParts[1])
		if !ok {
			colors.PrintWarning("Admin access denied: Invalid or expired session")
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized",
				"message": "Admin session required",
			})
			c.Abort()
			return
		}

		// Request-scoped session, no ambient globals
		c.Set("admin_session", session)
		c.Next()
	}
}
