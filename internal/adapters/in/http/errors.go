package http

import (
	"errors"
	"net/http"

	"sellerops/internal/pkg/errs"
	"sellerops/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrObjectStateConflict),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Error(ctx.Request().Context(), "request failed", err)
		return ctx.JSON(status, Error{Code: status, Message: internalErrorMessage})
	}
	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

// NewHTTPErrorHandler renders echo's own errors (unknown route, malformed body, bad path
// parameter) with the same body as handler errors.
func NewHTTPErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := internalErrorMessage

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			message = http.StatusText(status)
			if msg, ok := httpErr.Message.(string); ok && msg != "" {
				message = msg
			}
		} else {
			log.Error(ctx.Request().Context(), "unhandled request error", err)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, Error{Code: status, Message: message})
		}
		if writeErr != nil {
			log.Warn(ctx.Request().Context(), "writing error response failed", writeErr)
		}
	}
}
