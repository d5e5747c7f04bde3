package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader pushes mobilisation pictures to Cloudinary
type Uploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewUploader creates a Cloudinary-backed Uploader
func NewUploader(cloudName, apiKey, apiSecret, folder string) (*Uploader, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &Uploader{cld: cld, folder: folder}, nil
}

// UploadMobilisationPicture uploads an image (file path, URL or base64 data
// URI) and returns its delivery URL.
func (u *Uploader) UploadMobilisationPicture(ctx context.Context, file interface{}, publicID string) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   u.folder,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload picture: %w", err)
	}
	return result.SecureURL, nil
}
