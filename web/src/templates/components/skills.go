package components

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/domain"
)

// Skills renders skills grouped under category headings.
func Skills(groups []content.SkillGroup) cmp.Node {
	if len(groups) == 0 {
		return EmptyState("Skills are on their way.")
	}
	return g.Div(
		g.Class("grid gap-8 md:grid-cols-2 lg:grid-cols-3"),
		cmp.Map(groups, func(grp content.SkillGroup) cmp.Node {
			return g.Div(
				g.Class("rounded-xl border border-slate-800 p-6"),
				g.H3(g.Class("text-lg font-semibold mb-4 text-cyan-300"), cmp.Text(grp.Category)),
				g.Ul(g.Class("space-y-3"), cmp.Map(grp.Skills, skill)),
			)
		}),
	)
}

func skill(s domain.Skill) cmp.Node {
	return g.Li(
		g.Div(
			g.Class("flex items-center justify-between"),
			g.Span(
				cmp.If(s.Icon != "", g.Img(g.Src(s.Icon), g.Alt(""), g.Class("inline h-4 w-4 mr-2"))),
				cmp.Text(s.Name),
			),
			cmp.If(s.Level > 0, g.Span(g.Class("text-xs text-slate-400"), cmp.Textf("%d%%", s.Level))),
		),
		cmp.If(s.Level > 0, g.Div(
			g.Class("mt-1 h-1 rounded bg-slate-800"),
			cmp.Attr("role", "progressbar"),
			cmp.Attr("aria-valuenow", strconv.Itoa(s.Level)),
			cmp.Attr("aria-valuemin", "0"),
			cmp.Attr("aria-valuemax", "100"),
			g.Div(g.Class("h-1 rounded bg-cyan-400"), g.Style("width: "+strconv.Itoa(min(s.Level, 100))+"%")),
		)),
	)
}
