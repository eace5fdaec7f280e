// Package rendering turns gomponents nodes and templ components into HTML.
package rendering

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ErrUnsupportedComponent is returned for values that are neither a templ
// component nor a gomponents node.
var ErrUnsupportedComponent = errors.New("unsupported component type")

var _ echo.Renderer = (*UniversalRenderer)(nil)

// UniversalRenderer renders templ components and gomponents nodes. It is the
// server's echo.Renderer and also renders notification emails.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode matches gomponents.Node without importing it.
type gomponentNode interface {
	Render(w io.Writer) error
}

// Write renders component to w.
func (r *UniversalRenderer) Write(ctx context.Context, w io.Writer, component any) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedComponent, component)
	}
}

// String renders component into a string, for email bodies and tests.
func (r *UniversalRenderer) String(ctx context.Context, component any) (string, error) {
	var sb strings.Builder
	if err := r.Write(ctx, &sb, component); err != nil {
		return "", fmt.Errorf("failed to render component: %w", err)
	}
	return sb.String(), nil
}

// RenderPage writes component as an HTML response. Nothing is written when
// rendering fails, so the caller can still send an error response.
func (r *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := r.String(c.Request().Context(), component)
	if err != nil {
		return err
	}
	return c.HTML(status, body)
}

// Render implements echo.Renderer for c.Render(status, "", component); name
// is ignored. echo buffers the output before writing the response.
func (r *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.Write(c.Request().Context(), w, data)
}
