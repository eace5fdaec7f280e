package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// templNode embeds a templ component in a gomponents tree.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

func (n templNode) Render(w io.Writer) error {
	return n.component.Render(n.ctx, w)
}

// Templ adapts a templ component to a gomponents node. gomponents renders
// without a context, so ctx is captured here.
func Templ(ctx context.Context, component templ.Component) gomponents.Node {
	return templNode{ctx: ctx, component: component}
}

// SafeHTML embeds HTML that has already been sanitized (rendered markdown) into a
// gomponents tree. Never pass user input that has not been through the markdown renderer.
func SafeHTML(html string) gomponents.Node {
	if html == "" {
		return nil
	}
	return Templ(context.Background(), templ.Raw(html))
}
