package components

import (
	"strings"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/view"
)

// ProjectGrid renders project cards. Each card opens its detail modal via htmx
// and still works as a plain link.
func ProjectGrid(projects []domain.Project) cmp.Node {
	if len(projects) == 0 {
		return EmptyState("Projects are on their way.")
	}
	return g.Div(
		g.ID("project-grid"),
		g.Class("grid gap-6 sm:grid-cols-2 lg:grid-cols-3"),
		cmp.Map(projects, ProjectCard),
	)
}

// ProjectCard is one tile of the grid.
func ProjectCard(p domain.Project) cmp.Node {
	href := "/projects/" + p.Slug
	return g.Article(
		g.Class("group overflow-hidden rounded-xl border border-slate-800 bg-slate-900"),
		cmp.Attr("data-technologies", strings.Join(p.Technologies, "|")),
		g.A(
			g.Href(href),
			hx.Get(href),
			hx.Target("#modal"),
			hx.Swap("innerHTML"),
			g.Class("block"),
			cover(p),
			g.Div(
				g.Class("p-5"),
				g.H3(
					g.Class("text-lg font-semibold group-hover:text-cyan-300"),
					cmp.Text(p.Title),
					cmp.If(p.Year > 0, g.Span(g.Class("ml-2 text-sm text-slate-500"), cmp.Textf("%d", p.Year))),
				),
				cmp.If(p.Summary != "", g.P(g.Class("mt-2 text-sm text-slate-400"), cmp.Text(p.Summary))),
				g.Div(g.Class("mt-4"), Tags(p.Technologies)),
			),
		),
	)
}

func cover(p domain.Project) cmp.Node {
	if p.CoverImage == "" {
		return g.Div(g.Class("aspect-video bg-gradient-to-br from-cyan-900 to-purple-900"))
	}
	return g.Img(
		g.Src(p.CoverImage),
		g.Alt(p.Title),
		g.Class("aspect-video w-full object-cover"),
		cmp.Attr("loading", "lazy"),
	)
}

// TechnologyFilter renders buttons that filter the grid client-side.
func TechnologyFilter(techs []string) cmp.Node {
	if len(techs) < 2 {
		return nil
	}
	return g.Div(
		g.Class("mb-8 flex flex-wrap gap-2"),
		cmp.Attr("data-filter", "project-grid"),
		g.Button(g.Type("button"), g.Class("rounded-full bg-cyan-500 px-3 py-1 text-xs text-slate-950"), cmp.Attr("data-filter-value", ""), cmp.Text("All")),
		cmp.Map(techs, func(t string) cmp.Node {
			return g.Button(g.Type("button"), g.Class("rounded-full bg-slate-800 px-3 py-1 text-xs"), cmp.Attr("data-filter-value", t), cmp.Text(t))
		}),
	)
}

// ProjectModal wraps the project detail in a dismissable overlay. It is the
// fragment swapped into #modal.
func ProjectModal(p content.ProjectDetail) cmp.Node {
	return g.Div(
		g.Class("fixed inset-0 z-50 flex items-start justify-center overflow-y-auto bg-black/70 p-6"),
		cmp.Attr("role", "dialog"),
		cmp.Attr("aria-modal", "true"),
		cmp.Attr("aria-labelledby", "project-title"),
		cmp.Attr("data-modal", ""),
		g.Div(
			g.Class("relative w-full max-w-3xl rounded-2xl bg-slate-900 p-8 shadow-2xl"),
			g.Button(
				g.Type("button"),
				g.Class("absolute right-4 top-4 text-2xl text-slate-400 hover:text-white"),
				cmp.Attr("data-modal-close", ""),
				cmp.Attr("aria-label", "Close"),
				cmp.Text("×"),
			),
			ProjectDetail(p),
		),
	)
}

// ProjectDetail is the full project write-up.
func ProjectDetail(p content.ProjectDetail) cmp.Node {
	return g.Article(
		g.H1(g.ID("project-title"), g.Class("text-3xl font-bold"), cmp.Text(p.Title)),
		cmp.If(p.Summary != "", g.P(g.Class("mt-2 text-lg text-slate-300"), cmp.Text(p.Summary))),
		g.Div(g.Class("mt-4"), Tags(p.Technologies)),
		cmp.If(p.CoverImage != "", g.Img(g.Src(p.CoverImage), g.Alt(p.Title), g.Class("mt-6 w-full rounded-xl"))),
		g.Div(g.Class("prose prose-invert mt-6 max-w-none"), view.SafeHTML(p.BodyHTML)),
		cmp.If(len(p.Gallery) > 0, g.Div(
			g.Class("mt-6 grid gap-4 sm:grid-cols-2"),
			cmp.Map(p.Gallery, func(src string) cmp.Node {
				return g.Img(g.Src(src), g.Alt(""), g.Class("rounded-lg"), cmp.Attr("loading", "lazy"))
			}),
		)),
		g.Div(
			g.Class("mt-8 flex gap-4"),
			cmp.If(p.LiveURL != "", externalButton(p.LiveURL, "Visit site")),
			cmp.If(p.RepoURL != "", externalButton(p.RepoURL, "Source code")),
		),
	)
}

func externalButton(href, label string) cmp.Node {
	return g.A(
		g.Href(href),
		g.Target("_blank"),
		g.Rel("noopener noreferrer"),
		g.Class("rounded-full border border-slate-600 px-5 py-2 text-sm hover:border-cyan-400"),
		cmp.Text(label),
	)
}
