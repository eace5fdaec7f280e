package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/folio/internal/contact"
	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/filesource"
	"github.com/nfrund/folio/internal/handlers"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/nfrund/folio/internal/testutils"
)

const siteYAML = `
settings:
  title: Jane Doe
  tagline: Building calm software
  email: jane@example.com
  originLat: 52.52
  originLng: 13.405
skills:
  - {id: s1, name: Go, category: backend}
experience:
  - {id: e1, company: Acme, role: Engineer, lat: 40.71, lng: -74.0, startDate: "2021-03"}
projects:
  - {id: p1, slug: alpha, title: Alpha, summary: First project, body: "Some **bold** words", technologies: [Go]}
`

type testApp struct {
	e      *echo.Echo
	fs     afero.Fs
	source *filesource.Source
}

type countingRecorder struct{ outcomes []string }

func (r *countingRecorder) ObserveSubmission(outcome string) { r.outcomes = append(r.outcomes, outcome) }

func setup(t *testing.T, recorder handlers.SubmissionRecorder) *testApp {
	t.Helper()
	src, fs := testutils.NewFileSource(t, siteYAML)

	contentSvc := content.NewService(src, nil)
	contactSvc := contact.NewService(src, nil)

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret-test-secret-123456"))))

	pagesH := handlers.NewPageHandler(contentSvc)
	contactH := handlers.NewContactHandler(contentSvc, contactSvc, recorder)
	apiH := handlers.NewAPIHandler(contentSvc)

	e.GET("/", pagesH.HomeGet)
	e.GET("/about", pagesH.AboutGet)
	e.GET("/projects", pagesH.ProjectsGet)
	e.GET("/projects/:slug", pagesH.ProjectGet)
	e.GET("/contact", contactH.ContactGet)
	e.POST("/contact", contactH.ContactPost)
	e.GET("/api/content", apiH.ContentGet)
	e.GET("/api/hero/frames", apiH.HeroFramesGet)
	e.GET("/api/globe/arcs", apiH.GlobeArcsGet)

	return &testApp{e: e, fs: fs, source: src}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func TestPages_Render(t *testing.T) {
	app := setup(t, nil)

	tests := []struct {
		path string
		want []string
	}{
		{path: "/", want: []string{"Jane Doe", "Building calm software", "Backend", "Alpha"}},
		{path: "/about", want: []string{"<title>About - Jane Doe</title>", "Engineer · Acme"}},
		{path: "/projects", want: []string{"<title>Projects - Jane Doe</title>", `hx-get="/projects/alpha"`}},
		{path: "/contact", want: []string{`<form id="contact-form"`, "mailto:jane@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := app.do(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
			for _, w := range tt.want {
				assert.Contains(t, rec.Body.String(), w)
			}
		})
	}
}

func TestProjectGet(t *testing.T) {
	app := setup(t, nil)

	t.Run("full page", func(t *testing.T) {
		rec := app.do(httptest.NewRequest(http.MethodGet, "/projects/alpha", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<html")
		assert.Contains(t, rec.Body.String(), "<strong>bold</strong>")
	})

	t.Run("htmx fragment", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/projects/alpha", nil)
		req.Header.Set("HX-Request", "true")
		rec := app.do(req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "<html")
		assert.Contains(t, rec.Body.String(), `role="dialog"`)
	})

	t.Run("boosted navigation gets full page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/projects/alpha", nil)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Boosted", "true")
		rec := app.do(req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<html")
		assert.Contains(t, rec.Body.String(), "<strong>bold</strong>")
	})

	t.Run("unknown slug", func(t *testing.T) {
		rec := app.do(httptest.NewRequest(http.MethodGet, "/projects/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Page not found")
	})

	t.Run("malformed slug", func(t *testing.T) {
		rec := app.do(httptest.NewRequest(http.MethodGet, "/projects/a.b", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func postForm(values url.Values, htmx bool) *http.Request {
	return postFormTo("/contact", values, htmx)
}

func postFormTo(path string, values url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func validValues() url.Values {
	return url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello, I have a project for you."},
	}
}

func submissions(t *testing.T, fs afero.Fs) []string {
	t.Helper()
	entries, err := afero.ReadDir(fs, "content/submissions")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestContactPost(t *testing.T) {
	t.Run("valid without htmx redirects with flash", func(t *testing.T) {
		rec := &countingRecorder{}
		app := setup(t, rec)

		res := app.do(postForm(validValues(), false))
		assert.Equal(t, http.StatusSeeOther, res.Code)
		assert.Equal(t, "/contact", res.Header().Get(echo.HeaderLocation))
		assert.NotEmpty(t, res.Header().Get("Set-Cookie"))
		assert.Len(t, submissions(t, app.fs), 1)
		assert.Equal(t, []string{"accepted"}, rec.outcomes)

		// Following the redirect with the cookie shows the flash once.
		follow := httptest.NewRequest(http.MethodGet, "/contact", nil)
		for _, c := range res.Result().Cookies() {
			follow.AddCookie(c)
		}
		page := app.do(follow)
		assert.Contains(t, page.Body.String(), "Thanks for reaching out!")
	})

	t.Run("valid with htmx returns fragment", func(t *testing.T) {
		app := setup(t, nil)

		res := app.do(postForm(validValues(), true))
		require.Equal(t, http.StatusOK, res.Code)
		assert.NotContains(t, res.Body.String(), "<html")
		assert.Contains(t, res.Body.String(), "Thanks for reaching out!")
	})

	t.Run("invalid without htmx re-renders with errors", func(t *testing.T) {
		rec := &countingRecorder{}
		app := setup(t, rec)
		values := validValues()
		values.Set("email", "not-an-email")

		res := app.do(postForm(values, false))
		require.Equal(t, http.StatusUnprocessableEntity, res.Code)
		assert.Contains(t, res.Body.String(), "Please enter a valid email address.")
		assert.Contains(t, res.Body.String(), `value="Ada"`)
		assert.Empty(t, submissions(t, app.fs))
		assert.Equal(t, []string{"invalid"}, rec.outcomes)
	})

	t.Run("invalid with htmx returns form fragment", func(t *testing.T) {
		app := setup(t, nil)
		values := validValues()
		values.Set("message", "short")

		res := app.do(postForm(values, true))
		require.Equal(t, http.StatusOK, res.Code)
		assert.NotContains(t, res.Body.String(), "<html")
		assert.Contains(t, res.Body.String(), "Must be at least 10 characters.")
	})
}

type failingWriter struct{}

func (failingWriter) CreateSubmission(ctx context.Context, sub *domain.ContactSubmission) error {
	return domain.ErrSourceUnavailable
}

func TestContactPost_StorageFailure(t *testing.T) {
	app := setup(t, nil)
	contentSvc := content.NewService(app.source, nil)
	h := handlers.NewContactHandler(contentSvc, contact.NewService(failingWriter{}, nil), nil)
	app.e.POST("/contact-failing", h.ContactPost)

	res := app.do(postFormTo("/contact-failing", validValues(), true))
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "could not be sent")

	res = app.do(postFormTo("/contact-failing", validValues(), false))
	assert.Equal(t, http.StatusSeeOther, res.Code)
}

func TestAPI(t *testing.T) {
	app := setup(t, nil)

	t.Run("content", func(t *testing.T) {
		rec := app.do(httptest.NewRequest(http.MethodGet, "/api/content", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var page content.HomePage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Equal(t, "Jane Doe", page.Settings.Title)
		assert.Len(t, page.Projects, 1)
	})

	t.Run("hero frames", func(t *testing.T) {
		rec := app.do(httptest.NewRequest(http.MethodGet, "/api/hero/frames", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.EqualValues(t, 120, body["frameCount"])
	})

	t.Run("globe arcs", func(t *testing.T) {
		rec := app.do(httptest.NewRequest(http.MethodGet, "/api/globe/arcs", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Arcs []map[string]any `json:"arcs"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Arcs, 1)
		assert.Equal(t, "Acme", body.Arcs[0]["label"])
	})
}
