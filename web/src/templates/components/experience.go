package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/internal/domain"
)

// Timeline renders work experience, newest first as ordered by the source.
func Timeline(items []domain.Experience) cmp.Node {
	if len(items) == 0 {
		return EmptyState("Experience is on its way.")
	}
	return g.Ol(
		g.Class("relative border-l border-slate-700 space-y-10 ml-3"),
		cmp.Map(items, func(e domain.Experience) cmp.Node {
			return g.Li(
				g.Class("ml-6"),
				g.Span(g.Class("absolute -left-1.5 mt-2 h-3 w-3 rounded-full bg-cyan-400")),
				g.H3(g.Class("text-xl font-semibold"), cmp.Textf("%s · %s", e.Role, e.Company)),
				g.P(
					g.Class("text-sm text-slate-400"),
					cmp.Text(e.Period()),
					cmp.If(e.Location != "", cmp.Text(" · "+e.Location)),
				),
				cmp.If(e.Summary != "", g.P(g.Class("mt-2 text-slate-300"), cmp.Text(e.Summary))),
				cmp.If(len(e.Highlights) > 0, g.Ul(
					g.Class("mt-3 list-disc pl-5 space-y-1 text-slate-300"),
					cmp.Map(e.Highlights, func(h string) cmp.Node { return g.Li(cmp.Text(h)) }),
				)),
				g.Div(g.Class("mt-3"), Tags(e.Technologies)),
			)
		}),
	)
}

// EducationList renders degrees and courses.
func EducationList(items []domain.Education) cmp.Node {
	if len(items) == 0 {
		return nil
	}
	return g.Ul(
		g.Class("space-y-6"),
		cmp.Map(items, func(e domain.Education) cmp.Node {
			return g.Li(
				g.H3(g.Class("text-lg font-semibold"), cmp.Text(e.Institution)),
				g.P(
					g.Class("text-sm text-slate-400"),
					cmp.Text(degree(e)),
					cmp.If(e.Period() != "", cmp.Text(" · "+e.Period())),
				),
				cmp.If(e.Summary != "", g.P(g.Class("mt-2 text-slate-300"), cmp.Text(e.Summary))),
			)
		}),
	)
}

func degree(e domain.Education) string {
	switch {
	case e.Degree != "" && e.Field != "":
		return e.Degree + ", " + e.Field
	case e.Degree != "":
		return e.Degree
	default:
		return e.Field
	}
}
