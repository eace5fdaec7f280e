package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/testutils"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	// Redirect slog's output to a buffer to inspect it.
	var logBuffer bytes.Buffer
	handler := slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{
		AddSource: true,
	})
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(handler))
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")
	assert.NotContains(t, rec.Body.String(), "deliberate", "internal errors are not shown to visitors")
	assert.Contains(t, rec.Body.String(), "Something went wrong")

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)", "Log message should indicate an unhandled error")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"", "Log should contain the original error message")
	assert.Contains(t, logOutput, "stack_trace=", "Log must contain the stack_trace field")
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

func TestHTTPErrorHandler_NotFound(t *testing.T) {
	e := echo.New()
	setupErrorHandling(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

const siteYAML = `
settings:
  title: Jane Doe
projects:
  - {id: p1, slug: alpha, title: Alpha}
`

type capturingSender struct {
	mu   sync.Mutex
	sent []string
}

func (s *capturingSender) Send(ctx context.Context, msg domain.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg.To)
	return nil
}

func (s *capturingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func newTestServer(t *testing.T) (*Server, *capturingSender) {
	t.Helper()
	src, _ := testutils.NewFileSource(t, siteYAML)

	cfg := &config.Config{
		SessionSecret:    "test-session-secret-0123456789",
		ContactRecipient: "owner@example.com",
		ContactRateLimit: 5,
	}
	sender := &capturingSender{}
	s := New(Deps{Cfg: cfg, Repo: src, Writer: src, Emailer: sender})
	s.RegisterRoutes()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.StartSubscribers(ctx))
	t.Cleanup(func() {
		cancel()
		_ = s.Close(context.Background())
	})
	return s, sender
}

func TestServer_Routes(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		path     string
		code     int
		contains string
	}{
		{"/health", http.StatusOK, "OK"},
		{"/", http.StatusOK, "Jane Doe"},
		{"/about", http.StatusOK, "About - Jane Doe"},
		{"/projects", http.StatusOK, "Alpha"},
		{"/projects/alpha", http.StatusOK, "Alpha"},
		{"/projects/missing", http.StatusNotFound, "Page not found"},
		{"/contact", http.StatusOK, "contact-form"},
		{"/api/hero/frames", http.StatusOK, "frameCount"},
		{"/api/globe/arcs", http.StatusOK, "arcs"},
		{"/static/css/site.css", http.StatusOK, "box-sizing"},
		{"/static/js/hero.js", http.StatusOK, "requestAnimationFrame"},
		{"/metrics", http.StatusOK, "folio_http_inflight_requests"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestServer_RequestIDAndSecurityHeaders(t *testing.T) {
	s, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
}

func TestServer_ContactSubmissionSendsNotification(t *testing.T) {
	s, sender := newTestServer(t)

	form := url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Would love to collaborate on something."},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thanks for reaching out!")
	assert.Eventually(t, func() bool { return sender.count() == 1 }, 2*time.Second, 20*time.Millisecond)
}

func TestServer_APIContent(t *testing.T) {
	s, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Settings struct {
			Title string `json:"title"`
		} `json:"settings"`
		Skills []any `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Jane Doe", body.Settings.Title)
	assert.NotNil(t, body.Skills, "empty sections are empty lists, not null")
}

func TestOpenSource_UnknownSource(t *testing.T) {
	_, err := OpenSource(context.Background(), &config.Config{ContentSource: "ftp"})
	assert.ErrorContains(t, err, "unknown content source")
}
