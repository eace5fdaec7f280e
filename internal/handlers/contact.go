package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/folio/internal/contact"
	"github.com/nfrund/folio/internal/metrics"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/view"
	"github.com/nfrund/folio/web/src/templates/components"
	"github.com/nfrund/folio/web/src/templates/pages"
)

const (
	contactSuccessMessage = "Thanks for reaching out! I'll get back to you soon."
	contactFailureMessage = "Sorry, your message could not be sent. Please try again later."
)

// ContactHandler serves and accepts the contact form.
type ContactHandler struct {
	content   ContentService
	submitter ContactSubmitter
	recorder  SubmissionRecorder
}

// NewContactHandler creates a new ContactHandler. recorder may be nil.
func NewContactHandler(content ContentService, submitter ContactSubmitter, recorder SubmissionRecorder) *ContactHandler {
	return &ContactHandler{content: content, submitter: submitter, recorder: recorder}
}

// ContactGet handles GET /contact.
func (h *ContactHandler) ContactGet(c echo.Context) error {
	return h.renderPage(c, http.StatusOK, components.ContactFormProps{})
}

// ContactPost handles POST /contact.
func (h *ContactHandler) ContactPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var form contact.Form
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission.")
	}
	form.RemoteIP = c.RealIP()
	form.UserAgent = c.Request().UserAgent()

	_, err := h.submitter.Submit(ctx, form)

	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		h.observe(metrics.OutcomeInvalid)
		props := components.ContactFormProps{Values: form, Errors: verr}
		if isHTMX(c) {
			// htmx only swaps 2xx responses by default.
			return c.Render(http.StatusOK, "", components.ContactForm(props))
		}
		return h.renderPage(c, http.StatusUnprocessableEntity, props)

	case err != nil:
		h.observe(metrics.OutcomeFailed)
		logger.Error("Contact submission failed", "error", err)
		if isHTMX(c) {
			return c.Render(http.StatusOK, "", components.ContactForm(components.ContactFormProps{
				Values:  form,
				Message: contactFailureMessage,
			}))
		}
		view.SetFlashError(c, contactFailureMessage)
		return c.Redirect(http.StatusSeeOther, "/contact")
	}

	h.observe(metrics.OutcomeAccepted)
	if isHTMX(c) {
		return c.Render(http.StatusOK, "", components.ContactForm(components.ContactFormProps{
			Success: true,
			Message: contactSuccessMessage,
		}))
	}
	view.SetFlashSuccess(c, contactSuccessMessage)
	return c.Redirect(http.StatusSeeOther, "/contact")
}

func (h *ContactHandler) renderPage(c echo.Context, status int, props components.ContactFormProps) error {
	settings := h.content.Settings(c.Request().Context())
	return c.Render(status, "", pages.Contact(baseProps(c), settings, props))
}

func (h *ContactHandler) observe(outcome string) {
	if h.recorder != nil {
		h.recorder.ObserveSubmission(outcome)
	}
}
