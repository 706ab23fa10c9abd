package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "favorites/internal/delivery/context"
	"favorites/internal/delivery/http/response"
	domainerrors "favorites/internal/domain/errors"
	"favorites/internal/errors"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// ErrorMiddleware renders every error as the reply envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := m.resolve(err, c)
	if status >= http.StatusInternalServerError {
		message = internalErrorMessage
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}
	_ = response.Error(c, status, message)
}

func (m *ErrorMiddleware) resolve(err error, c echo.Context) (int, string) {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(err, c)
		}

		return appErr.HTTPCode(), appErr.Message()
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logFailure(err, c)
		}

		return httpErr.Code, message
	}

	m.logFailure(err, c)

	return http.StatusInternalServerError, internalErrorMessage
}

func (m *ErrorMiddleware) logFailure(err error, c echo.Context) {
	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).ErrorContext(ctx, "Unhandled error",
		slog.String("error", err.Error()),
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
