package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RolesKey  contextKey = "roles"
)

// RequireRole guards operator routes. When no secret is configured the
// routes are left open, which is the local development setup.
func RequireRole(manager *TokenManager, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !manager.Enabled() {
			c.Next()
			return
		}

		// Expecting the standard "Bearer <token>" format
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token is missing"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims, err := manager.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		if !claims.HasRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "missing role " + role})
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Set(string(RolesKey), claims.Roles)
		c.Next()
	}
}
