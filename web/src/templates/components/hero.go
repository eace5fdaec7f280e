package components

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/hero"
)

// Hero is the scroll-scrubbed image sequence with the site headline on top.
// The first frame doubles as the poster image before the script runs.
func Hero(s domain.SiteSettings, m hero.Manifest) cmp.Node {
	var poster string
	if len(m.Frames) > 0 {
		poster = m.Frames[0]
	}

	return g.Section(
		g.ID("hero"),
		g.Class("relative h-[300vh]"),
		cmp.Attr("data-hero", ""),
		g.Div(
			g.Class("sticky top-0 h-screen overflow-hidden"),
			g.Canvas(
				g.ID("hero-canvas"),
				g.Class("absolute inset-0 h-full w-full object-cover"),
				g.Width(strconv.Itoa(m.Width)),
				g.Height(strconv.Itoa(m.Height)),
				cmp.Attr("data-manifest", "hero-manifest"),
				cmp.Attr("data-src", "/api/hero/frames"),
				cmp.If(poster != "", cmp.Attr("data-poster", poster)),
			),
			g.Div(
				g.Class("relative z-10 flex h-full flex-col items-center justify-center text-center px-6"),
				g.H1(g.Class("text-5xl md:text-7xl font-extrabold tracking-tight"), cmp.Text(s.Title)),
				cmp.If(s.Tagline != "", g.P(g.Class("mt-4 text-xl text-slate-300"), cmp.Text(s.Tagline))),
				g.Div(
					g.Class("mt-8 flex gap-4"),
					g.A(g.Href("/projects"), g.Class("rounded-full bg-cyan-500 px-6 py-3 font-semibold text-slate-950"), cmp.Text("View projects")),
					g.A(g.Href("/contact"), g.Class("rounded-full border border-slate-500 px-6 py-3"), cmp.Text("Get in touch")),
				),
			),
		),
		jsonScript("hero-manifest", m),
	)
}
