// Package handlers contains the echo handlers for pages, the contact form
// and the JSON endpoints used by the page scripts.
package handlers

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/folio/internal/contact"
	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/globe"
	"github.com/nfrund/folio/internal/hero"
	"github.com/nfrund/folio/internal/view"
	"github.com/nfrund/folio/web/src/templates/layouts"
)

// ContentService builds the page view models.
type ContentService interface {
	Home(ctx context.Context) (*content.HomePage, error)
	About(ctx context.Context) (*content.AboutPage, error)
	Projects(ctx context.Context) (*content.ProjectsPage, error)
	Project(ctx context.Context, slug string) (*content.ProjectPage, error)
	Settings(ctx context.Context) domain.SiteSettings
	Hero(ctx context.Context) hero.Manifest
	Globe(ctx context.Context) globe.Scene
}

// ContactSubmitter accepts contact form submissions.
type ContactSubmitter interface {
	Submit(ctx context.Context, form contact.Form) (*domain.ContactSubmission, error)
}

// SubmissionRecorder counts contact submissions by outcome.
type SubmissionRecorder interface {
	ObserveSubmission(outcome string)
}

// isHTMX reports whether the request expects an htmx fragment.
// Boosted navigation swaps the whole body, so it gets the full page.
func isHTMX(c echo.Context) bool {
	h := c.Request().Header
	return h.Get("HX-Request") == "true" && h.Get("HX-Boosted") != "true"
}

// baseProps collects the layout data every full page needs.
func baseProps(c echo.Context) layouts.BaseProps {
	return layouts.BaseProps{
		Path:  c.Request().URL.Path,
		Flash: view.GetFlashData(c),
	}
}
