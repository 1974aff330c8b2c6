package handlers

import (
	"net/http"

	"driveline/middleware"
	"driveline/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeviceHandler manages the FCM device token lifecycle for the logged-in
// user: register on permission grant, refresh on rotation, revoke on opt-out.
type DeviceHandler struct {
	Push   notification.PushService
	Logger *zap.Logger
}

func NewDeviceHandler(push notification.PushService, logger *zap.Logger) *DeviceHandler {
	return &DeviceHandler{Push: push, Logger: logger}
}

type deviceTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// RegisterToken stores the device token after the browser grants permission.
func (h *DeviceHandler) RegisterToken(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in", "redirect": "/login"})
		return
	}

	var req deviceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Push.RegisterToken(c.Request.Context(), user.ID, req.Token); err != nil {
		h.Logger.Warn("failed to register device token", zap.Int("userId", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not register device"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "registered"})
}

// CurrentToken returns the token registered for the logged-in user, if any.
func (h *DeviceHandler) CurrentToken(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in", "redirect": "/login"})
		return
	}

	token, err := h.Push.CurrentToken(c.Request.Context(), user.ID)
	if err != nil {
		h.Logger.Warn("failed to read device token", zap.Int("userId", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not read device token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// RevokeToken removes the stored token when the user opts out.
func (h *DeviceHandler) RevokeToken(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in", "redirect": "/login"})
		return
	}

	if err := h.Push.RevokeToken(c.Request.Context(), user.ID); err != nil {
		h.Logger.Warn("failed to revoke device token", zap.Int("userId", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not revoke device token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "revoked"})
}
