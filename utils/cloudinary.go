package utils

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var cld *cloudinary.Cloudinary

// InitCloudinary initializes the Cloudinary connection
func InitCloudinary() error {
	var err error

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return fmt.Errorf("the Cloudinary environment variables are not defined")
	}

	cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return fmt.Errorf("error initializing Cloudinary: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = cld.Admin.Ping(ctx)
	if err != nil {
		return fmt.Errorf("error checking the Cloudinary connection: %v", err)
	}

	log.Println("Cloudinary initialized, connection verified")
	return nil
}

func boolPointer(b bool) *bool {
	return &b
}

func isValidImageType(filename string) bool {
	validExtensions := []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	lowerFilename := strings.ToLower(filename)

	for _, ext := range validExtensions {
		if strings.HasSuffix(lowerFilename, ext) {
			return true
		}
	}
	return false
}

// UploadProfilePhoto uploads a profile image to Cloudinary and returns its
// public URL. The public id follows the original naming convention
// user_{id}_{suffix}.
func UploadProfilePhoto(file *multipart.FileHeader, userID int64) (string, error) {
	if !isValidImageType(file.Filename) {
		return "", fmt.Errorf("unsupported image format, use JPG, PNG, GIF or WEBP")
	}

	if file.Size > 10*1024*1024 {
		return "", fmt.Errorf("image too large, 10MB maximum")
	}

	if cld == nil {
		if err := InitCloudinary(); err != nil {
			return "", err
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening the file: %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publicID := fmt.Sprintf("user_%d_%d", userID, time.Now().Unix())

	result, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       "profile",
		Overwrite:    boolPointer(true),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("error uploading to Cloudinary: %v", err)
	}

	return result.SecureURL, nil
}
