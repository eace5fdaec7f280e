package view_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/internal/view"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Run a dummy handler through the middleware so the session is initialized in the context.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Set and Get Success Flash", func(t *testing.T) {
		c, rec := setupTestContext()

		view.SetFlashSuccess(c, "Thanks, your message is on its way.")
		assert.NotEmpty(t, rec.Header().Get("Set-Cookie"), "the session cookie is written")

		flashes := view.GetFlashData(c)
		require.Len(t, flashes.Success, 1)
		assert.Equal(t, "Thanks, your message is on its way.", flashes.Success[0])
		assert.Empty(t, flashes.Error)

		flashesAfterRead := view.GetFlashData(c)
		assert.True(t, flashesAfterRead.Empty(), "Flashes should be cleared after being read")
	})

	t.Run("Set and Get Error Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "Something went wrong.")

		flashes := view.GetFlashData(c)
		require.Len(t, flashes.Error, 1)
		assert.Equal(t, "Something went wrong.", flashes.Error[0])
		assert.Empty(t, flashes.Success)
	})

	t.Run("No Flashes", func(t *testing.T) {
		c, _ := setupTestContext()
		assert.True(t, view.GetFlashData(c).Empty())
	})
}

func TestSafeHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, g.Div(view.SafeHTML("<p><em>hi</em></p>")).Render(&buf))
	assert.Equal(t, "<div><p><em>hi</em></p></div>", buf.String())

	assert.Nil(t, view.SafeHTML(""))
}
