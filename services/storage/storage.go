// Package storage uploads content images (marketing pages, admin CMS) to
// Cloudinary.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService defines the interface for content image operations.
type StorageService interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage builds a storage service from a CLOUDINARY_URL value.
func NewCloudinaryStorage(cloudinaryURL string) (*CloudinaryStorage, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary URL is not configured")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

// UploadImage uploads an image into the given folder and returns its
// permanent secure URL.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("no URL returned for uploaded image")
	}
	return result.SecureURL, nil
}

// DeleteImage removes an uploaded image by its public ID.
func (s *CloudinaryStorage) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// disabledStorage rejects every operation; used when no Cloudinary URL is
// configured so the rest of the app can start without uploads.
type disabledStorage struct{}

func (disabledStorage) UploadImage(context.Context, io.Reader, string) (string, error) {
	return "", fmt.Errorf("image uploads are not configured")
}

func (disabledStorage) DeleteImage(context.Context, string) error {
	return fmt.Errorf("image uploads are not configured")
}

// Disabled returns a StorageService stub for unconfigured deployments.
func Disabled() StorageService {
	return disabledStorage{}
}
