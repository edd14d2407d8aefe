package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/jsonmask/pkg/masking"
)

// newTestRouter returns a router that echoes request bodies, plus the buffer
// receiving its JSON log lines.
func newTestRouter(t *testing.T, maxBodyBytes int64) (*gin.Engine, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	r := gin.New()
	r.Use(SecurityHeaders())
	r.Use(RequestBodyLogger(logger, masking.NewService(nil), maxBodyBytes))
	r.POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusCreated, "text/plain", body)
	})
	return r, &logs
}

func decodeLogLine(t *testing.T, logs *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestSecurityHeaders(t *testing.T) {
	r, _ := newTestRouter(t, 0)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("ok"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}

func TestRequestBodyLogger(t *testing.T) {
	tests := []struct {
		name          string
		contentType   string
		body          string
		maxBodyBytes  int64
		wantBody      any
		wantTruncated bool
	}{
		{
			name:        "JSON body masked",
			contentType: "application/json",
			body:        `{"user":"john","password":"secret123"}`,
			wantBody:    `{"user":"john","password":"***MASKED***"}`,
		},
		{
			name:        "JSON with charset",
			contentType: "application/json; charset=utf-8",
			body:        `{"token":"abc"}`,
			wantBody:    `{"token":"***MASKED***"}`,
		},
		{
			name:        "structured syntax suffix",
			contentType: "application/merge-patch+json",
			body:        `{"apiKey":"k"}`,
			wantBody:    `{"apiKey":"***MASKED***"}`,
		},
		{
			name:          "truncated body masked by fallback",
			contentType:   "application/json",
			body:          `{"password":"secret123","padding":"xxxxxxxxxxxxxxxx"}`,
			maxBodyBytes:  24,
			wantBody:      `{"password":"***MASKED***",`,
			wantTruncated: true,
		},
		{
			name:          "cut inside a sensitive value",
			contentType:   "application/json",
			body:          `{"password":"secret123456","a":1}`,
			maxBodyBytes:  20,
			wantBody:      `{"password":"***MASKED***"`,
			wantTruncated: true,
		},
		{
			name:        "non-JSON body not logged",
			contentType: "text/plain",
			body:        "password=secret123",
			wantBody:    nil,
		},
		{
			name:        "empty JSON body not logged",
			contentType: "application/json",
			body:        "",
			wantBody:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, logs := newTestRouter(t, tt.maxBodyBytes)

			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, http.StatusCreated, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String(), "handler should receive the complete body")

			entry := decodeLogLine(t, logs)
			assert.Equal(t, "HTTP request", entry["msg"])
			assert.Equal(t, http.MethodPost, entry["method"])
			assert.Equal(t, "/echo", entry["path"])
			assert.EqualValues(t, http.StatusCreated, entry["status"])
			assert.Contains(t, entry, "duration_ms")
			assert.Equal(t, tt.wantBody, entry["body"])
			if tt.wantTruncated {
				assert.Equal(t, true, entry["body_truncated"])
			} else {
				assert.NotContains(t, entry, "body_truncated")
			}
			assert.NotContains(t, logs.String(), "secret1")
		})
	}
}

func TestRequestBodyLogger_NilDependencies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestBodyLogger(nil, nil, 0))
	r.POST("/echo", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", body)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"secret":"s"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"secret":"s"}`, rec.Body.String())
}

func TestIsJSONContentType(t *testing.T) {
	tests := []struct {
		ct   string
		want bool
	}{
		{ct: "application/json", want: true},
		{ct: "Application/JSON", want: true},
		{ct: "application/problem+json", want: true},
		{ct: "text/plain", want: false},
		{ct: "application/x-www-form-urlencoded", want: false},
		{ct: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.ct, func(t *testing.T) {
			assert.Equal(t, tt.want, isJSONContentType(tt.ct))
		})
	}
}
