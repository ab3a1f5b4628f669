package http

import (
	"net/http"

	"sourcing/internal/core/application/usecases/commands"
	"sourcing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// UploadMedia handles POST /api/upload: a single file is relayed to the
// media host and its public URL returned.
func (s *Server) UploadMedia(ctx echo.Context) error {
	form, err := readMultipart(ctx, []string{"upload_preset"}, []string{"file"})
	if err != nil {
		return s.fail(ctx, err)
	}
	defer form.Close()

	files, err := form.uploads("file")
	if err != nil {
		return s.fail(ctx, err)
	}
	switch len(files) {
	case 0:
		return s.fail(ctx, errs.NewValueIsRequiredError("file"))
	case 1:
	default:
		return s.fail(ctx, errs.NewValueIsOutOfRangeError("file", len(files), 1, 1))
	}

	cmd, err := commands.NewUploadMediaCommand(files[0], form.value("upload_preset"))
	if err != nil {
		return s.fail(ctx, err)
	}

	uploaded, err := s.handlers.UploadMedia.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respond(ctx, http.StatusOK, "", mediaJSON{URL: uploaded.URL, PublicID: uploaded.PublicID})
}
