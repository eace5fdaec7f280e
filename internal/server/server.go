package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/contact"
	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/handlers"
	"github.com/nfrund/folio/internal/markdown"
	"github.com/nfrund/folio/internal/metrics"
	appmiddleware "github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/nfrund/folio/internal/rendering"
)

// Deps are the collaborators the server is built from.
type Deps struct {
	Cfg     config.Provider
	Repo    domain.ContentRepository
	Writer  domain.SubmissionWriter
	Emailer domain.EmailSender
	// Bus carries contact.submitted events. When nil an in-memory bus is created.
	Bus *pubsub.Bus
	// Metrics defaults to a fresh registry.
	Metrics *metrics.Metrics
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E       *echo.Echo
	Cfg     config.Provider
	Content *content.Service
	Contact *contact.Service
	Metrics *metrics.Metrics
	Bus     *pubsub.Bus

	notifier *contact.Notifier
	closers  []func(context.Context) error
}

// New wires the echo instance, middleware and services. Routes are added by RegisterRoutes.
func New(deps Deps) *Server {
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.Bus == nil {
		deps.Bus = pubsub.NewBus()
	}

	contentSvc := content.NewService(deps.Repo, markdown.New())
	contentSvc.ObserveFetches(deps.Metrics.ObserveFetch)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Skipper: func(c echo.Context) bool { return c.Path() == "/metrics" },
	}))
	e.Use(deps.Metrics.Middleware())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(deps.Cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	return &Server{
		E:        e,
		Cfg:      deps.Cfg,
		Content:  contentSvc,
		Contact:  contact.NewService(deps.Writer, deps.Bus),
		Metrics:  deps.Metrics,
		Bus:      deps.Bus,
		notifier: contact.NewNotifier(deps.Emailer, deps.Cfg.GetContactRecipient()),
	}
}

// OnClose registers a cleanup to run after the HTTP server has stopped.
func (s *Server) OnClose(fn func(context.Context) error) {
	s.closers = append(s.closers, fn)
}

// StartSubscribers attaches the background event consumers.
func (s *Server) StartSubscribers(ctx context.Context) error {
	if err := s.notifier.Start(ctx, s.Bus); err != nil {
		return err
	}
	slog.Debug("Contact notifier subscribed", "topic", contact.SubmittedEvent.Name())
	return nil
}
