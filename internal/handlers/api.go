package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIHandler serves the JSON documents read by the page scripts.
type APIHandler struct {
	content ContentService
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(content ContentService) *APIHandler {
	return &APIHandler{content: content}
}

// ContentGet handles GET /api/content with the home page view model.
func (h *APIHandler) ContentGet(c echo.Context) error {
	page, err := h.content.Home(c.Request().Context())
	if err != nil {
		return fmt.Errorf("failed to build content: %w", err)
	}
	return c.JSON(http.StatusOK, page)
}

// HeroFramesGet handles GET /api/hero/frames.
func (h *APIHandler) HeroFramesGet(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	return c.JSON(http.StatusOK, h.content.Hero(c.Request().Context()))
}

// GlobeArcsGet handles GET /api/globe/arcs.
func (h *APIHandler) GlobeArcsGet(c echo.Context) error {
	return c.JSON(http.StatusOK, h.content.Globe(c.Request().Context()))
}
