package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	govsn "github.com/reoring/govsn"
	xlog "github.com/reoring/govsn/internal/log"
)

// APIError is the body of every non-2xx response.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBadRequestError reports an unreadable request body.
func NewBadRequestError(message string, cause error) *APIError {
	err := &APIError{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: message}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// NewConversionError maps a converter error to 422, keeping the document path.
func NewConversionError(err error) *APIError {
	out := &APIError{
		Status:  http.StatusUnprocessableEntity,
		Code:    govsn.CodeConversionError,
		Message: err.Error(),
	}
	if errors.Is(err, govsn.ErrUnsupportedItemType) {
		out.Code = "UNSUPPORTED_ITEM_TYPE"
	}
	var ce *govsn.ConversionError
	if errors.As(err, &ce) {
		out.Path = ce.Path
	}
	return out
}

// NewInternalError reports an unexpected failure.
func NewInternalError(message string, cause error) *APIError {
	err := &APIError{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: message}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// ErrorHandler renders errors as APIError JSON.
func ErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var apiErr *APIError
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &apiErr):
		case errors.As(err, &httpErr):
			apiErr = &APIError{Status: httpErr.Code, Code: "HTTP_ERROR", Message: fmt.Sprint(httpErr.Message)}
		default:
			apiErr = NewInternalError("an unexpected error occurred", nil)
		}
		if apiErr.Status >= http.StatusInternalServerError {
			l := xlog.FromContext(c.Request().Context())
			l.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		}
		if err := c.JSON(apiErr.Status, apiErr); err != nil {
			l := xlog.FromContext(c.Request().Context())
			l.Warn().Err(err).Msg("write error response")
		}
	}
}
