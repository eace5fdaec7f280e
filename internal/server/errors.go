package server

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/nfrund/folio/web/src/templates/layouts"
	"github.com/nfrund/folio/web/src/templates/pages"
)

// setupErrorHandling installs the central error handler. 5xx errors are
// logged with a stack trace and never expose their message to the client.
func setupErrorHandling(e *echo.Echo) {
	renderer := rendering.NewUniversalRenderer()

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := ""
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
		} else if errors.Is(err, domain.ErrNotFound) {
			code = http.StatusNotFound
		}

		req := c.Request()
		logger := middleware.FromContext(req.Context())
		if code >= http.StatusInternalServerError {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", req.Method,
				"path", req.URL.Path,
				"stack_trace", string(debug.Stack()),
			)
			message = ""
		}
		if message == "" {
			message = http.StatusText(code)
		}

		var respErr error
		switch {
		case req.Method == http.MethodHead:
			respErr = c.NoContent(code)
		case strings.HasPrefix(req.URL.Path, "/api/") || wantsJSON(req):
			respErr = c.JSON(code, map[string]string{"error": message})
		default:
			base := layouts.BaseProps{Path: req.URL.Path, Settings: domain.SiteSettings{}.WithDefaults()}
			respErr = renderer.RenderPage(c, code, pages.Error(base, code, message))
		}
		if respErr != nil {
			logger.Error("Failed to write error response", "error", respErr)
		}
	}
}

func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML)
}
