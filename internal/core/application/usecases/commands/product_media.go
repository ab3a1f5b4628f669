package commands

import (
	"context"
	"log/slog"

	"sourcing/internal/core/ports"
)

// productMedia uploads and removes the images of catalog products.
type productMedia struct {
	storage ports.MediaStorage
	logger  *slog.Logger
}

// upload stores files in folder. If one upload fails the ones already stored
// are destroyed before the error is returned.
func (m productMedia) upload(ctx context.Context, folder string, files []Upload) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		uploaded, err := m.storage.Upload(ctx, ports.MediaFile{
			Name:         f.Name,
			Content:      f.Content,
			Folder:       folder,
			ResourceType: resourceTypeAuto,
		})
		if err != nil {
			m.destroy(ctx, urls)
			return nil, err
		}
		urls = append(urls, uploaded.URL)
	}
	return urls, nil
}

// destroy removes hosted files. Failures are logged and otherwise ignored:
// the product record is the source of truth and an orphaned file is harmless.
func (m productMedia) destroy(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := m.storage.Destroy(ctx, url); err != nil {
			m.logger.WarnContext(ctx, "failed to destroy media", "url", url, "error", err)
		}
	}
}
