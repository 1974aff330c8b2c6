package handlers

import (
	"net/http"

	"driveline/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler handles content image uploads for the admin CMS.
type StorageHandler struct {
	Storage storage.StorageService
	Logger  *zap.Logger
}

func NewStorageHandler(storageSvc storage.StorageService, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{Storage: storageSvc, Logger: logger}
}

// UploadImage accepts a multipart "file" field and returns the hosted URL.
func (h *StorageHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read file"})
		return
	}
	defer file.Close()

	folder := c.DefaultPostForm("folder", "content")
	url, err := h.Storage.UploadImage(c.Request.Context(), file, folder)
	if err != nil {
		h.Logger.Error("failed to upload content image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// DeleteImage removes a previously uploaded image by public ID.
func (h *StorageHandler) DeleteImage(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing publicId"})
		return
	}

	if err := h.Storage.DeleteImage(c.Request.Context(), publicID); err != nil {
		h.Logger.Error("failed to delete content image", zap.String("publicId", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
