package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/convertly/convertly-api/internal/logger"
)

const maxLoggedBody = 64 << 10

type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	if w.body.Len() < maxLoggedBody {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// EnhancedLoggingMiddleware logs request and response bodies. It only does
// work when isDevelopment is set.
func EnhancedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment {
			c.Next()
			return
		}

		startTime := time.Now()
		log := logger.Log.With(zap.String("correlation_id", GetCorrelationID(c)))

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxLoggedBody))
			c.Request.Body = io.NopCloser(bytes.NewReader(requestBody))
		}

		var requestJSON interface{}
		if strings.HasPrefix(c.GetHeader("Content-Type"), "application/json") && len(requestBody) > 0 {
			if err := json.Unmarshal(requestBody, &requestJSON); err != nil {
				requestJSON = string(requestBody)
			}
		}

		log.Info("Detailed request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Any("body", requestJSON),
			zap.Int("body_size", len(requestBody)),
		)

		blw := &bodyLogWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		var responseJSON interface{}
		responseBody := blw.body.Bytes()
		if strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "application/json") && len(responseBody) > 0 {
			if err := json.Unmarshal(responseBody, &responseJSON); err != nil {
				responseJSON = string(responseBody)
			}
		}

		log.Info("Detailed response",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.Any("body", responseJSON),
			zap.Int("body_size", len(responseBody)),
		)

		for _, err := range c.Errors {
			log.Error("Request error", zap.Error(err.Err), zap.Any("meta", err.Meta))
		}
	}
}

// RequestLoggingMiddleware logs one line per completed request.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		logger.Log.Info("Request completed",
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		)
	}
}
