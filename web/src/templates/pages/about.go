package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/view"
	"github.com/nfrund/folio/web/src/templates/components"
	"github.com/nfrund/folio/web/src/templates/layouts"
)

// About is the long-form biography page.
func About(base layouts.BaseProps, page *content.AboutPage) cmp.Node {
	s := page.Settings
	base.Settings = s
	base.Title = "About"

	return layouts.Base(base,
		components.Section("about", "About",
			g.Div(
				g.Class("grid gap-10 md:grid-cols-3"),
				g.Div(
					cmp.If(s.Avatar != "", g.Img(g.Src(s.Avatar), g.Alt(s.Title), g.Class("w-full rounded-2xl"))),
					cmp.If(s.Location != "", g.P(g.Class("mt-4 text-slate-400"), cmp.Text(s.Location))),
					cmp.If(s.ResumeURL != "", g.A(g.Href(s.ResumeURL), g.Class("mt-4 inline-block text-cyan-300 hover:underline"), cmp.Text("Download résumé"))),
				),
				g.Div(
					g.Class("md:col-span-2 prose prose-invert max-w-none"),
					bio(page.BioHTML, s.Tagline),
				),
			),
		),
		components.Section("skills", "Skills", components.Skills(page.Skills)),
		components.Section("experience", "Experience", components.Timeline(page.Experience)),
		cmp.If(len(page.Education) > 0,
			components.Section("education", "Education", components.EducationList(page.Education)),
		),
	)
}

func bio(html, fallback string) cmp.Node {
	if html == "" {
		return g.P(cmp.Text(fallback))
	}
	return view.SafeHTML(html)
}
