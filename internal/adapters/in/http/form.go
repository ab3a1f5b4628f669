package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"slices"

	"sourcing/internal/core/application/usecases/commands"
	"sourcing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errUnknownField = errors.New("unknown field")

// multipartForm is a parsed multipart request limited to known fields.
// Close releases the opened files and any temporary files of the form.
type multipartForm struct {
	form    *multipart.Form
	closers []io.Closer
}

func readMultipart(ctx echo.Context, fields, files []string) (*multipartForm, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("form", err)
	}

	if err = errors.Join(checkKnown(form.Value, fields), checkKnown(form.File, files)); err != nil {
		_ = form.RemoveAll()
		return nil, err
	}

	return &multipartForm{form: form}, nil
}

func checkKnown[V any](got map[string]V, allowed []string) error {
	var errList []error
	for key := range got {
		if !slices.Contains(allowed, key) {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(key, errUnknownField))
		}
	}
	return errors.Join(errList...)
}

func (f *multipartForm) value(name string) string {
	if v := f.form.Value[name]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// decode unmarshals a JSON encoded field. A missing field leaves dest untouched.
func (f *multipartForm) decode(name string, dest any) error {
	raw := f.value(name)
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}

// uploads opens every file sent under name.
func (f *multipartForm) uploads(name string) ([]commands.Upload, error) {
	headers := f.form.File[name]
	files := make([]commands.Upload, 0, len(headers))
	for _, h := range headers {
		file, err := h.Open()
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
		}
		f.closers = append(f.closers, file)
		files = append(files, commands.Upload{Name: h.Filename, Content: file})
	}
	return files, nil
}

func (f *multipartForm) Close() {
	for _, c := range f.closers {
		_ = c.Close()
	}
	_ = f.form.RemoveAll()
}
