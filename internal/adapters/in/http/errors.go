package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"sourcing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// envelope wraps every response body.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(ctx echo.Context, code int, message string, data any) error {
	return ctx.JSON(code, envelope{Success: true, Message: message, Data: data})
}

func respondList[T any](ctx echo.Context, items []T) error {
	count := len(items)
	return ctx.JSON(http.StatusOK, envelope{Success: true, Count: &count, Data: items})
}

// statusCode maps application errors onto HTTP status codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes an error envelope. Client errors carry the error text; server
// errors are logged and answered with the status text only.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusCode(err)
	message := err.Error()
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"status", code,
			"error", err,
		)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, envelope{Success: false, Message: message})
}

// errorHandler renders errors returned by middleware and the router, such as
// request validation failures and unknown routes, in the envelope format.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
		}
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error",
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"error", err,
			)
			message = http.StatusText(code)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, envelope{Success: false, Message: message})
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", err)
		}
	}
}
