package commands

import (
	"context"

	"sourcing/internal/core/ports"
)

const (
	uploadFolder          = "products"
	productImagesFolder   = "product_images"
	measurementSpecFolder = "measurement_specs"
	resourceTypeAuto      = "auto"
)

// UploadMediaCommandHandler stores a file in the "products" folder of the media host.
type UploadMediaCommandHandler struct {
	storage ports.MediaStorage
}

func NewUploadMediaCommandHandler(storage ports.MediaStorage) UploadMediaCommandHandler {
	return UploadMediaCommandHandler{
		storage: storage,
	}
}

func (h UploadMediaCommandHandler) Handle(ctx context.Context, command UploadMediaCommand) (ports.UploadedMedia, error) {
	if err := command.Validate(); err != nil {
		return ports.UploadedMedia{}, err
	}

	return h.storage.Upload(ctx, ports.MediaFile{
		Name:         command.File().Name,
		Content:      command.File().Content,
		Folder:       uploadFolder,
		ResourceType: resourceTypeAuto,
		UploadPreset: command.UploadPreset(),
	})
}
