package api

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/jsonmask/pkg/masking"
)

// DefaultMaxBodyBytes is the request body prefix logged when no limit is given.
const DefaultMaxBodyBytes int64 = 64 << 10

// SecurityHeaders returns middleware that sets standard security response headers.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// RequestBodyLogger returns middleware that logs each request with its JSON
// body masked by svc. At most maxBodyBytes of the body are logged (<= 0 selects
// DefaultMaxBodyBytes); the handler still receives the complete body.
// Non-JSON bodies are never logged. A nil svc masks with the defaults.
func RequestBodyLogger(logger *slog.Logger, svc *masking.Service, maxBodyBytes int64) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	if svc == nil {
		svc = masking.NewService(nil)
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}

	return func(c *gin.Context) {
		start := time.Now()

		var (
			body      string
			truncated bool
		)
		if c.Request.Body != nil && isJSONContentType(c.ContentType()) {
			prefix, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
			if err != nil {
				logger.Warn("Failed to read request body for logging",
					"path", c.Request.URL.Path, "error", err)
			}
			if int64(len(prefix)) > maxBodyBytes {
				truncated = true
				body = string(prefix[:maxBodyBytes])
			} else {
				body = string(prefix)
			}
			c.Request.Body = restoredBody{
				Reader: io.MultiReader(bytes.NewReader(prefix), c.Request.Body),
				Closer: c.Request.Body,
			}
		}

		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if body != "" {
			attrs = append(attrs, "body", svc.LogValue(body))
			if truncated {
				attrs = append(attrs, "body_truncated", true)
			}
		}
		logger.Info("HTTP request", attrs...)
	}
}

// restoredBody replays the bytes consumed for logging, then the rest of the
// original body, and closes the original.
type restoredBody struct {
	io.Reader
	io.Closer
}

func isJSONContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	return ct == gin.MIMEJSON || strings.HasSuffix(ct, "+json")
}
