package libs

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

const maxImageSize = 5 * 1024 * 1024

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func newClient() (*cloudinary.Cloudinary, error) {
	if cldURL := os.Getenv("CLOUDINARY_URL"); cldURL != "" {
		return cloudinary.NewFromURL(cldURL)
	}

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary environment variables not set")
	}
	return cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
}

// UploadImage validates and stages the uploaded file, pushes it to cloudinary
// and returns the hosted URL. The local staging file is always removed.
func UploadImage(c *gin.Context, file *multipart.FileHeader, folder string) (string, error) {
	if file.Size > maxImageSize {
		return "", errors.New("file too large (max 5MB)")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return "", errors.New("invalid file type, only images are allowed")
	}

	localPath := filepath.Join(os.TempDir(), fmt.Sprintf("%d%s", time.Now().UnixNano(), ext))
	if err := c.SaveUploadedFile(file, localPath); err != nil {
		return "", err
	}
	defer os.Remove(localPath)

	cld, err := newClient()
	if err != nil {
		return "", err
	}

	resp, err := cld.Upload.Upload(c.Request.Context(), localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("%s_%d", folder, time.Now().UnixNano()),
		Folder:   folder,
	})
	if err != nil {
		return "", err
	}
	if resp.SecureURL == "" {
		return "", errors.New("cloudinary returned no URL")
	}
	return resp.SecureURL, nil
}

// DeleteImage removes a previously uploaded asset by public ID.
func DeleteImage(ctx context.Context, publicID string) error {
	cld, err := newClient()
	if err != nil {
		return err
	}

	result, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}
