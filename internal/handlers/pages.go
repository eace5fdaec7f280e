package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/web/src/templates/pages"
)

// PageHandler renders the content pages.
type PageHandler struct {
	content ContentService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(content ContentService) *PageHandler {
	return &PageHandler{content: content}
}

// HomeGet handles GET /.
func (h *PageHandler) HomeGet(c echo.Context) error {
	page, err := h.content.Home(c.Request().Context())
	if err != nil {
		return fmt.Errorf("failed to build home page: %w", err)
	}
	return c.Render(http.StatusOK, "", pages.Home(baseProps(c), page))
}

// AboutGet handles GET /about.
func (h *PageHandler) AboutGet(c echo.Context) error {
	page, err := h.content.About(c.Request().Context())
	if err != nil {
		return fmt.Errorf("failed to build about page: %w", err)
	}
	return c.Render(http.StatusOK, "", pages.About(baseProps(c), page))
}

// ProjectsGet handles GET /projects.
func (h *PageHandler) ProjectsGet(c echo.Context) error {
	page, err := h.content.Projects(c.Request().Context())
	if err != nil {
		return fmt.Errorf("failed to build projects page: %w", err)
	}
	return c.Render(http.StatusOK, "", pages.Projects(baseProps(c), page))
}

// ProjectGet handles GET /projects/:slug. htmx requests get the modal
// fragment; everything else gets the full page.
func (h *PageHandler) ProjectGet(c echo.Context) error {
	var req slugParam
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return h.notFound(c)
	}

	ctx := c.Request().Context()
	page, err := h.content.Project(ctx, req.Slug)
	if errors.Is(err, domain.ErrNotFound) {
		middleware.FromContext(ctx).Info("Unknown project requested", "slug", req.Slug)
		return h.notFound(c)
	}
	if err != nil {
		return fmt.Errorf("failed to load project %q: %w", req.Slug, err)
	}

	if isHTMX(c) {
		return c.Render(http.StatusOK, "", pages.ProjectFragment(page))
	}
	return c.Render(http.StatusOK, "", pages.Project(baseProps(c), page))
}

func (h *PageHandler) notFound(c echo.Context) error {
	base := baseProps(c)
	base.Settings = h.content.Settings(c.Request().Context())
	return c.Render(http.StatusNotFound, "", pages.Error(base, http.StatusNotFound, "There is no project at this address."))
}
