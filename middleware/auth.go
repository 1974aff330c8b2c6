package middleware

import (
	"net/http"
	"strings"

	"driveline/services/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserKey  = "currentUser"
	ContextTokenKey = "authToken"
)

// BearerToken extracts the bearer token from the Authorization header, or ""
// when absent.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// AuthMiddleware resolves the logged-in user and stores it in the request
// context. Requests without a valid session are rejected with a login
// redirect hint; the redirect itself is the client's job.
func AuthMiddleware(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header", "redirect": "/login"})
			return
		}

		user, err := authSvc.CurrentUser(c.Request.Context(), token)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session", "redirect": "/login"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}
