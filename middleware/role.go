package middleware

import (
	"net/http"

	"driveline/models"
	"driveline/services/auth"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the user placed in context by AuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// RequireRole gates a route group on auth.CanAccess. Must run after
// AuthMiddleware.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if !auth.CanAccess(user, requiredRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have access to this resource"})
			return
		}
		c.Next()
	}
}
