package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/projects/:slug", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("slug"))
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	for _, slug := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/"+slug, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/projects/:slug", "200")))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "folio_http_requests_total")
	assert.True(t, strings.Contains(rec.Body.String(), `path="/projects/:slug"`))
}

func TestMiddleware_RecordsErrorStatus(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/boom", "404")))
}

func TestObserveFetchAndSubmission(t *testing.T) {
	m := New()
	m.ObserveFetch("skills", 10*time.Millisecond, nil)
	m.ObserveFetch("skills", 10*time.Millisecond, errors.New("down"))
	m.ObserveSubmission(OutcomeAccepted)
	m.ObserveSubmission(OutcomeInvalid)
	m.ObserveSubmission(OutcomeInvalid)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.fetchErrors.WithLabelValues("skills")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissions.WithLabelValues(OutcomeInvalid)))
}
