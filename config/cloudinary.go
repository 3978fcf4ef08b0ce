package config

import (
	"context"
	"fmt"
	"os"

	"github.com/ashishk-dev/renteasy-backend/utils"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// propertyFolder is the fixed remote folder all listing photos land in.
const propertyFolder = "properties"

// CloudinaryUploader wraps the Cloudinary SDK behind the small surface the
// upload handler needs: local file path in, durable URL out.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// InitCloudinary builds the media client from the single CLOUDINARY_URL
// connection string (cloudinary://<key>:<secret>@<cloud>).
func InitCloudinary() (*CloudinaryUploader, error) {
	url := os.Getenv("CLOUDINARY_URL")
	if url == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL not set in environment")
	}

	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("error configuring Cloudinary client: %v", err)
	}

	utils.Logger.Info("Cloudinary client configured")
	return &CloudinaryUploader{cld: cld}, nil
}

// Upload sends the file at localPath to the property folder and returns its
// secure URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, localPath string) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{Folder: propertyFolder})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}
