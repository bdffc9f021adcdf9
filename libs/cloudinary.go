package libs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"brewhouse/config"
	"brewhouse/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrNotConfigured = errors.New("cloudinary is not configured")

func newClient() (*cloudinary.Cloudinary, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName != "" && apiKey != "" && apiSecret != "" {
		return cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	}

	if cldURL := os.Getenv("CLOUDINARY_URL"); cldURL != "" {
		return cloudinary.NewFromURL(cldURL)
	}

	return nil, ErrNotConfigured
}

// OffloadImage uploads a previously saved local image to Cloudinary and
// removes the local copy. localPath is relative to the upload dir. Returns
// ErrNotConfigured when no Cloudinary credentials are set; callers fall
// back to serving the local file.
func OffloadImage(localPath string) (string, error) {
	cld, err := newClient()
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(config.AppConfig.UploadDir, localPath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", fullPath)
	}

	folder := filepath.Dir(localPath)
	resp, err := cld.Upload.Upload(context.Background(), fullPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("%s_%d", folder, time.Now().UnixNano()),
		Folder:   folder,
	})

	os.Remove(fullPath)

	if err != nil {
		return "", err
	}
	if resp == nil || (resp.SecureURL == "" && resp.URL == "") {
		return "", errors.New("cloudinary returned an empty URL")
	}

	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	return resp.URL, nil
}

// RemoveImage deletes a stored image by its public URL, whichever backend
// holds it. Local /uploads URLs map back into the upload dir; Cloudinary
// URLs are destroyed by their derived public ID. A failure here only means
// a leaked file, so callers log and move on.
func RemoveImage(imageURL string) error {
	if imageURL == "" {
		return nil
	}
	if rel, ok := strings.CutPrefix(imageURL, "/uploads/"); ok {
		return utils.DeleteFile(rel)
	}

	publicID := publicIDFromURL(imageURL)
	if publicID == "" {
		return nil
	}
	return DeleteImage(publicID)
}

// publicIDFromURL recovers the public ID from a Cloudinary delivery URL:
// everything after the /upload/ segment, minus the version segment and
// the file extension. Returns "" for URLs that are not Cloudinary's.
func publicIDFromURL(imageURL string) string {
	_, after, ok := strings.Cut(imageURL, "/upload/")
	if !ok {
		return ""
	}

	if version, rest, ok := strings.Cut(after, "/"); ok && len(version) > 1 && version[0] == 'v' {
		if _, err := strconv.Atoi(version[1:]); err == nil {
			after = rest
		}
	}

	return strings.TrimSuffix(after, filepath.Ext(after))
}

func DeleteImage(publicID string) error {
	cld, err := newClient()
	if err != nil {
		return err
	}

	result, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete from Cloudinary: %w", err)
	}
	if result.Result != "ok" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}
