// Package cloudinary stores product and upload media on Cloudinary.
package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"sourcing/internal/core/ports"
	"sourcing/internal/pkg/errs"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrNotCloudinaryURL = errors.New("not a Cloudinary delivery URL")

// uploadAPI is the part of the Cloudinary upload API the storage uses.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

var _ ports.MediaStorage = (*Storage)(nil)

// Storage implements ports.MediaStorage.
type Storage struct {
	api    uploadAPI
	logger *slog.Logger
}

// NewStorage connects to the account identified by cloudName.
func NewStorage(cloudName, apiKey, apiSecret string, logger *slog.Logger) (*Storage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("configure cloudinary: %w", err)
	}
	return newStorage(&cld.Upload, logger), nil
}

func newStorage(api uploadAPI, logger *slog.Logger) *Storage {
	return &Storage{
		api:    api,
		logger: logger.With("component", "cloudinary"),
	}
}

func (s *Storage) Upload(ctx context.Context, file ports.MediaFile) (ports.UploadedMedia, error) {
	if file.Content == nil {
		return ports.UploadedMedia{}, errs.NewValueIsRequiredError("file")
	}

	resourceType := file.ResourceType
	if resourceType == "" {
		resourceType = "auto"
	}

	result, err := s.api.Upload(ctx, file.Content, uploader.UploadParams{
		Folder:       file.Folder,
		ResourceType: resourceType,
		UploadPreset: file.UploadPreset,
	})
	if err != nil {
		return ports.UploadedMedia{}, errs.NewStoreUnavailableError("upload media", err)
	}
	if result.Error.Message != "" {
		return ports.UploadedMedia{}, errs.NewStoreUnavailableError("upload media", errors.New(result.Error.Message))
	}

	s.logger.DebugContext(ctx, "media uploaded", "name", file.Name, "public_id", result.PublicID)
	return ports.UploadedMedia{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// Destroy removes the asset behind a delivery URL. An asset that is already
// gone is not an error.
func (s *Storage) Destroy(ctx context.Context, mediaURL string) error {
	asset, err := ParseURL(mediaURL)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("url", err)
	}

	result, err := s.api.Destroy(ctx, uploader.DestroyParams{
		PublicID:     asset.PublicID,
		ResourceType: asset.ResourceType,
	})
	if err != nil {
		return errs.NewStoreUnavailableError("destroy media", err)
	}
	if result.Error.Message != "" {
		return errs.NewStoreUnavailableError("destroy media", errors.New(result.Error.Message))
	}
	if result.Result != "ok" {
		s.logger.WarnContext(ctx, "media was not destroyed", "public_id", asset.PublicID, "result", result.Result)
	}
	return nil
}

// Asset identifies an uploaded file on Cloudinary.
type Asset struct {
	ResourceType string
	PublicID     string
}

// ParseURL extracts the resource type and public id from a delivery URL such as
// https://res.cloudinary.com/demo/image/upload/v1712/products/shirt.png, which
// yields ("image", "products/shirt"). The version segment is optional. Raw
// files keep their extension in the public id.
func ParseURL(mediaURL string) (Asset, error) {
	u, err := url.Parse(mediaURL)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %w", ErrNotCloudinaryURL, err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	upload := -1
	for i, segment := range segments {
		if segment == "upload" {
			upload = i
			break
		}
	}
	if upload < 1 || upload == len(segments)-1 {
		return Asset{}, fmt.Errorf("%w: %s", ErrNotCloudinaryURL, mediaURL)
	}

	resourceType := segments[upload-1]
	rest := segments[upload+1:]
	if isVersion(rest[0]) && len(rest) > 1 {
		rest = rest[1:]
	}

	publicID := strings.Join(rest, "/")
	if resourceType != "raw" {
		publicID = strings.TrimSuffix(publicID, path.Ext(publicID))
	}
	if publicID == "" {
		return Asset{}, fmt.Errorf("%w: %s", ErrNotCloudinaryURL, mediaURL)
	}

	return Asset{ResourceType: resourceType, PublicID: publicID}, nil
}

func isVersion(segment string) bool {
	if len(segment) < 2 || segment[0] != 'v' {
		return false
	}
	for _, r := range segment[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
