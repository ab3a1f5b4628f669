package ports

import (
	"context"
	"io"
)

// MediaFile is a single file relayed to the media host.
type MediaFile struct {
	// Name is the client file name, used for logging only.
	Name    string
	Content io.Reader

	// Folder groups uploads on the host, e.g. "products" or "product_images".
	Folder string

	// ResourceType is "auto" unless the caller knows better.
	ResourceType string

	// UploadPreset is optional.
	UploadPreset string
}

// UploadedMedia is where the host stored a file.
type UploadedMedia struct {
	URL      string
	PublicID string
}

// MediaStorage is the third-party media host.
type MediaStorage interface {
	// Upload stores the file and returns its public URL.
	// Host failures are returned as errs.StoreUnavailableError.
	Upload(ctx context.Context, file MediaFile) (UploadedMedia, error)

	// Destroy removes a previously uploaded file by its public URL.
	Destroy(ctx context.Context, url string) error
}
