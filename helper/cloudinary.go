package helper

import (
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
)

// CloudinaryConfigured reports whether direct-upload signing is available.
func CloudinaryConfigured() bool {
	return os.Getenv("CLOUDINARY_CLOUD_NAME") != "" &&
		os.Getenv("CLOUDINARY_API_KEY") != "" &&
		os.Getenv("CLOUDINARY_API_SECRET") != ""
}

// InitCloudinary builds a client from env credentials. Only called when
// CloudinaryConfigured.
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
}

// SignUploadParams produces what the kiosk needs to upload a customer photo
// straight to cloudinary: signature, timestamp and the public identifiers.
func SignUploadParams(folder, publicID string) (map[string]interface{}, error) {
	timestamp := time.Now().Unix()

	params := url.Values{}
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))
	if folder != "" {
		params.Set("folder", folder)
	}
	if publicID != "" {
		params.Set("public_id", publicID)
	}

	signature, err := api.SignParameters(params, os.Getenv("CLOUDINARY_API_SECRET"))
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	}, nil
}
