package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/axellelanca/fileprocessor/internal/errors"
	"github.com/axellelanca/fileprocessor/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/cors"
)

const (
	// HeaderRequestID is echoed on every response.
	HeaderRequestID = "X-Request-ID"
	// HeaderCorrelationID is accepted as an alternative inbound header.
	HeaderCorrelationID = "X-Correlation-ID"

	maxRequestIDLength = 128
)

func normalizeRequestID(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.ContainsAny(v, "\r\n") {
		return ""
	}
	if len(v) > maxRequestIDLength {
		v = v[:maxRequestIDLength]
	}
	return v
}

// RequestID propagates the caller's request id, or generates one, into the
// request context and the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := normalizeRequestID(c.GetHeader(HeaderRequestID))
		if id == "" {
			id = normalizeRequestID(c.GetHeader(HeaderCorrelationID))
		}
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// RequestLogger emits one log record per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= http.StatusInternalServerError:
			slog.ErrorContext(c.Request.Context(), "http request", attrs...)
		case status >= http.StatusBadRequest:
			slog.WarnContext(c.Request.Context(), "http request", attrs...)
		default:
			slog.InfoContext(c.Request.Context(), "http request", attrs...)
		}
	}
}

// Recovery turns a panic into the generic 500 body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "panic on the server", "because", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apperrors.MsgInternal})
	})
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(fileService FileService, defaultPageSize int) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), RequestLogger(), Recovery())
	SetupRoutes(router, fileService, defaultPageSize)
	return router
}

// WithCORS wraps h so browsers on allowedOrigins can call the API.
func WithCORS(h http.Handler, allowedOrigins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{HeaderRequestID},
	}).Handler(h)
}
