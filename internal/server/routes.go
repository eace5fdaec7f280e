package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/folio/internal/handlers"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	pageHandler := handlers.NewPageHandler(s.Content)
	contactHandler := handlers.NewContactHandler(s.Content, s.Contact, s.Metrics)
	apiHandler := handlers.NewAPIHandler(s.Content)
	rateLimiter := middleware.RateLimiter(s.Cfg.GetContactRateLimit())

	s.E.GET("/", pageHandler.HomeGet)
	s.E.GET("/about", pageHandler.AboutGet)
	s.E.GET("/projects", pageHandler.ProjectsGet)
	s.E.GET("/projects/:slug", pageHandler.ProjectGet)

	s.E.GET("/contact", contactHandler.ContactGet)
	s.E.POST("/contact", contactHandler.ContactPost, rateLimiter)

	api := s.E.Group("/api")
	api.GET("/content", apiHandler.ContentGet)
	api.GET("/hero/frames", apiHandler.HeroFramesGet)
	api.GET("/globe/arcs", apiHandler.GlobeArcsGet)

	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))
	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
