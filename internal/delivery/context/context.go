// Package context carries request-scoped values between middleware, handlers and infra.
package context

import (
	"context"
	"log/slog"

	"favorites/internal/infra/session"
	"favorites/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeySession is the echo.Context key of the per-request SessionContext.
	KeySession ContextKey = "session"

	// KeyCookieSession is the echo.Context key of the loaded cookie session.
	KeyCookieSession ContextKey = "cookie_session"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID stored on the echo context, or "".
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok {
		return id
	}

	return ""
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx == nil {
		return fallback
	}
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetSession stores the per-request session context.
func SetSession(c echo.Context, session usecase.SessionContext) {
	c.Set(string(KeySession), session)
}

// GetSession returns the session stored by the session middleware.
// Requests that never passed through it are treated as anonymous.
func GetSession(c echo.Context) usecase.SessionContext {
	if session, ok := c.Get(string(KeySession)).(usecase.SessionContext); ok {
		return session
	}

	return usecase.AnonymousSession()
}

// SetCookieSession stores the cookie session loaded for this request.
func SetCookieSession(c echo.Context, sess *session.Session) {
	c.Set(string(KeyCookieSession), sess)
}

// GetCookieSession returns the cookie session, or nil outside the session middleware.
func GetCookieSession(c echo.Context) *session.Session {
	sess, _ := c.Get(string(KeyCookieSession)).(*session.Session)

	return sess
}
