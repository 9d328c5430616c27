package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// Client wraps Cloudinary image upload with delivery optimization. The site
// hosts images only; there is no video content.
type Client interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (Upload, error)
}

// Upload is the result of a successful image upload.
type Upload struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

const imageWidth = 1200

// imageEager requests an optimized rendition at upload time so the first
// page view does not pay the transformation cost.
const imageEager = "q_auto,f_auto,w_1200,c_limit"

var eagerAsyncFalse = false

// OptimizedURL builds a delivery URL with auto quality/format for an
// existing public ID.
func OptimizedURL(cloudName, publicID string, width int) string {
	if width <= 0 {
		width = imageWidth
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/q_auto,f_auto,w_%d,c_limit/%s",
		cloudName, width, publicID)
}

type clientImpl struct {
	cloudName string
	uploader  *uploader.API
}

func (c *clientImpl) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (Upload, error) {
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:     folder,
		PublicID:   publicID,
		Eager:      imageEager,
		EagerAsync: &eagerAsyncFalse,
	})
	if err != nil {
		return Upload{}, err
	}
	url := result.SecureURL
	if len(result.Eager) > 0 && result.Eager[0].SecureURL != "" {
		url = result.Eager[0].SecureURL
	}
	return Upload{URL: url, PublicID: result.PublicID}, nil
}

// NewClientFromParams builds a Client from Cloudinary credentials.
func NewClientFromParams(cloudName, apiKey, apiSecret string) (Client, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &clientImpl{cloudName: cloudName, uploader: up}, nil
}
