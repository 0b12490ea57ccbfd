package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/convertly/convertly-api/internal/logger"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"
	correlationIDKey    = "correlationID"
	maxCorrelationIDLen = 128
)

// CorrelationIDMiddleware makes sure every request carries a correlation ID,
// reusing the caller's X-Correlation-ID when present.
func CorrelationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(CorrelationIDHeader)
		if correlationID == "" || len(correlationID) > maxCorrelationIDLen {
			correlationID = uuid.New().String()
		}

		c.Set(correlationIDKey, correlationID)
		c.Header(CorrelationIDHeader, correlationID)
		c.Request = c.Request.WithContext(WithCorrelationID(c.Request.Context(), correlationID))

		logger.Log.Debug("Request received",
			zap.String("correlation_id", correlationID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
		)

		c.Next()
	}
}

// GetCorrelationID retrieves the correlation ID from the gin context.
func GetCorrelationID(c *gin.Context) string {
	if id, exists := c.Get(correlationIDKey); exists {
		if correlationID, ok := id.(string); ok {
			return correlationID
		}
	}
	return ""
}

type contextKey string

const correlationIDContextKey contextKey = "correlationID"

// WithCorrelationID adds a correlation ID to ctx.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDContextKey, correlationID)
}

// CorrelationIDFromContext retrieves the correlation ID from ctx.
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDContextKey).(string); ok {
		return id
	}
	return ""
}

// LogWithCorrelationID returns the global logger tagged with ctx's
// correlation ID.
func LogWithCorrelationID(ctx context.Context) *zap.Logger {
	if correlationID := CorrelationIDFromContext(ctx); correlationID != "" {
		return logger.Log.With(zap.String("correlation_id", correlationID))
	}
	return logger.Log
}
