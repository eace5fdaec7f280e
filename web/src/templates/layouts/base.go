package layouts

import (
	"time"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	gc "maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/view"
	"github.com/nfrund/folio/web/src/templates/components"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// BaseProps carries what every full page needs.
type BaseProps struct {
	Title       string
	Description string
	Path        string
	Settings    domain.SiteSettings
	Flash       view.FlashData
	// Scripts are extra page scripts loaded with defer.
	Scripts []string
}

// Base wraps page content in the document shell.
func Base(p BaseProps, content ...cmp.Node) cmp.Node {
	description := p.Description
	if description == "" {
		description = p.Settings.Description
	}

	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(p.Title, p.Settings.Title))),
				cmp.If(description != "", g.Meta(g.Name("description"), g.Content(description))),
				g.Link(g.Rel("stylesheet"), g.Href("/static/css/site.css")),
				g.Script(g.Src(htmxSrc), g.Defer()),
				g.Script(g.Src("/static/js/site.js"), g.Defer()),
				cmp.Map(p.Scripts, func(src string) cmp.Node {
					return g.Script(g.Src(src), g.Defer())
				}),
			),
			g.Body(
				g.Class("min-h-screen bg-slate-950 text-slate-100 antialiased"),
				hx.Boost("true"),
				header(p),
				components.Flash(p.Flash),
				g.Main(g.ID("content"), g.Class("flex-1"), cmp.Group(content)),
				footer(p.Settings),
				g.Div(g.ID("modal"), cmp.Attr("aria-live", "polite")),
			),
		),
	)
}

func header(p BaseProps) cmp.Node {
	return g.Header(
		g.Class("sticky top-0 z-40 backdrop-blur bg-slate-950/70 border-b border-slate-800"),
		g.Nav(
			g.Class("container mx-auto flex items-center justify-between px-6 py-4"),
			g.A(g.Href("/"), g.Class("font-bold text-lg tracking-tight"), cmp.Text(p.Settings.Title)),
			g.Ul(
				g.Class("flex gap-6 text-sm"),
				cmp.Map(mainNav, func(l navLink) cmp.Node {
					return g.Li(g.A(
						g.Href(l.Path),
						gc.Classes{
							"hover:text-cyan-300": true,
							"text-cyan-400":       isActive(l.Path, p.Path),
						},
						cmp.If(isActive(l.Path, p.Path), cmp.Attr("aria-current", "page")),
						cmp.Text(l.Label),
					))
				}),
			),
		),
	)
}

func footer(s domain.SiteSettings) cmp.Node {
	return g.Footer(
		g.Class("border-t border-slate-800 mt-24"),
		g.Div(
			g.Class("container mx-auto flex flex-col md:flex-row justify-between gap-4 px-6 py-8 text-sm text-slate-400"),
			g.P(cmp.Textf("© %d %s", time.Now().Year(), s.Title)),
			components.SocialLinks(s.Socials),
		),
	)
}
