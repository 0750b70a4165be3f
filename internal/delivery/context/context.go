// Package context holds what is attached to one request: its id, a logger
// tagged with that id and the browser session. Handlers read them from
// echo.Context; usecases and workers only see the id and logger, through
// context.Context.
package context

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeySession   ContextKey = "session"

	// HeaderXRequestID carries the request id in both directions.
	HeaderXRequestID = "X-Request-Id"
)

// Scoped returns ctx carrying requestID and a logger tagged with it.
// The HTTP middleware and the push worker both start a request this way.
func Scoped(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	logger := base.With(slog.String("request_id", requestID))
	ctx = context.WithValue(ctx, KeyRequestID, requestID)
	ctx = context.WithValue(ctx, KeyLogger, logger)

	return ctx, logger
}

// GetRequestID returns the id of the request. Outside the request-id
// middleware one is generated and kept, so the log line and the error body
// of the same request agree.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	id := uuid.NewString()
	SetRequestID(c, id)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when ctx was not scoped.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault prefers the request-scoped logger over fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetSession stores the browser session loaded for this request.
func SetSession(c echo.Context, sess *entity.Session) {
	c.Set(string(KeySession), sess)
}

// GetSession returns the browser session of the request, if the session middleware ran.
func GetSession(c echo.Context) (*entity.Session, bool) {
	sess, ok := c.Get(string(KeySession)).(*entity.Session)

	return sess, ok && sess != nil
}
