package handlers

import (
	"net/http"

	"driveline/middleware"
	"driveline/models"
	"driveline/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes login/logout and the current-user lookup.
type AuthHandler struct {
	Auth   *auth.Service
	Logger *zap.Logger
}

func NewAuthHandler(authSvc *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Auth: authSvc, Logger: logger}
}

// Login verifies credentials against the backend and opens a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	token, user, err := h.Auth.Login(c.Request.Context(), creds)
	if err != nil {
		h.Logger.Warn("login failed", zap.String("email", creds.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout drops the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Auth.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		h.Logger.Warn("logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Me returns the logged-in user set by the auth middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in", "redirect": "/login"})
		return
	}
	c.JSON(http.StatusOK, user)
}
