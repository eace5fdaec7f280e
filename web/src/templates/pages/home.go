package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/web/src/templates/components"
	"github.com/nfrund/folio/web/src/templates/layouts"
)

// Home is the landing page.
func Home(base layouts.BaseProps, page *content.HomePage) cmp.Node {
	base.Settings = page.Settings
	base.Scripts = append(base.Scripts, "/static/js/hero.js", "/static/js/globe.js")

	return layouts.Base(base,
		components.Hero(page.Settings, page.Hero),
		components.Section("skills", "Skills", components.Skills(page.Skills)),
		components.Section("experience", "Experience", components.Timeline(page.Experience)),
		components.Section("projects", "Selected projects",
			components.ProjectGrid(page.Projects),
			g.P(g.Class("mt-8"), g.A(g.Href("/projects"), g.Class("text-cyan-300 hover:underline"), cmp.Text("All projects →"))),
		),
		cmp.If(len(page.Testimonials) > 0,
			components.Section("testimonials", "Kind words", components.Testimonials(page.Testimonials)),
		),
		cmp.If(page.Globe.Origin != nil,
			components.Section("globe", "Where I've worked", components.Globe(page.Globe)),
		),
		components.Section("contact-cta", "",
			g.Div(
				g.Class("rounded-2xl bg-gradient-to-r from-cyan-900 to-purple-900 p-10 text-center"),
				g.H2(g.Class("text-3xl font-bold"), cmp.Text("Let's build something")),
				g.P(g.Class("mt-2 text-slate-300"), cmp.Text("Have a project in mind? I'd love to hear about it.")),
				g.A(g.Href("/contact"), g.Class("mt-6 inline-block rounded-full bg-white px-6 py-3 font-semibold text-slate-950"), cmp.Text("Contact me")),
			),
		),
	)
}
