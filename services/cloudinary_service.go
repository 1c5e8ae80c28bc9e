package services

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ServiceImageFolder is where mirrored service images are stored.
const ServiceImageFolder = "fixora/services"

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// MirrorImage copies a remote image into Cloudinary and returns the hosted
// secure URL and the public ID needed to delete it again.
func (s *CloudinaryService) MirrorImage(ctx context.Context, sourceURL string) (string, string, error) {
	unique := true
	overwrite := false
	result, err := s.cld.Upload.Upload(ctx, sourceURL, uploader.UploadParams{
		Folder:         ServiceImageFolder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return "", "", fmt.Errorf("failed to upload image: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", "", fmt.Errorf("upload successful but no URL returned")
	}
	return result.SecureURL, result.PublicID, nil
}

// DeleteImage deletes an image from Cloudinary using its public ID
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}
