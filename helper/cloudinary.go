package helper

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"strings"

	"hotel_manager/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func InitCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
}

// UploadImage pushes an image to Cloudinary and returns its secure URL.
func UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return "", err
	}

	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

// DestroyImage removes the asset behind a stored URL. Best-effort: a failure
// is logged, never propagated, so records can still be cleaned up when the
// asset is already gone.
func DestroyImage(ctx context.Context, url string) {
	publicID := ExtractPublicID(url)
	if publicID == "" {
		return
	}

	cld, err := InitCloudinary()
	if err != nil {
		log.Printf("cloudinary init failed, cannot destroy %s: %v", publicID, err)
		return
	}

	if _, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	}); err != nil {
		log.Printf("failed to destroy cloudinary asset %s: %v", publicID, err)
	}
}

// ExtractPublicID recovers <folder>/<public-id> from a Cloudinary delivery
// URL of the form .../image/upload/<folder>/<public-id>.<format>.
func ExtractPublicID(url string) string {
	parts := strings.Split(url, "/")
	n := len(parts)
	if n < 4 {
		return ""
	}
	publicID := strings.Join(parts[n-2:n], "/")
	return strings.TrimSuffix(publicID, filepath.Ext(publicID))
}
