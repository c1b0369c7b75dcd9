package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin creates a gin middleware to check for admin role.
// It must be used AFTER Middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := FromContext(c)
		if !rc.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}

		isAdmin, err := rc.IsAdmin(c.Request.Context())
		if err != nil {
			log.Printf("Error loading profile: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}
