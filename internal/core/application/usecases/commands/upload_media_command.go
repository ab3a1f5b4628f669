package commands

import (
	"errors"
	"io"
	"strings"

	"sourcing/internal/pkg/errs"
	"sourcing/internal/pkg/guard"
)

var ErrUploadMediaCommandIsNotConstructed = errors.New(
	"UploadMediaCommand must be created via NewUploadMediaCommand constructor",
)

// Upload is a file received from the admin portal.
type Upload struct {
	Name    string
	Content io.Reader
}

func (u Upload) validate(paramName string) error {
	if u.Content == nil {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

// UploadMediaCommand relays a single file to the media host.
type UploadMediaCommand struct { //nolint:recvcheck //using for validation
	file         Upload
	uploadPreset string

	guard guard.ConstructorGuard
}

// NewUploadMediaCommand requires a file; uploadPreset is optional.
func NewUploadMediaCommand(file Upload, uploadPreset string) (UploadMediaCommand, error) {
	if err := file.validate("file"); err != nil {
		return UploadMediaCommand{}, err
	}

	return UploadMediaCommand{
		file:         file,
		uploadPreset: strings.TrimSpace(uploadPreset),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UploadMediaCommand) Validate() error {
	return c.guard.Validate(ErrUploadMediaCommandIsNotConstructed)
}

func (c UploadMediaCommand) File() Upload         { return c.file }
func (c UploadMediaCommand) UploadPreset() string { return c.uploadPreset }
