package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/web/src/templates/components"
	"github.com/nfrund/folio/web/src/templates/layouts"
)

// Contact is the contact page with the form.
func Contact(base layouts.BaseProps, settings domain.SiteSettings, form components.ContactFormProps) cmp.Node {
	base.Settings = settings
	base.Title = "Contact"

	return layouts.Base(base,
		components.Section("contact", "Get in touch",
			g.P(
				g.Class("mb-8 max-w-xl text-slate-300"),
				cmp.Text("Send a message and I'll get back to you."),
				cmp.If(settings.Email != "", cmp.Group([]cmp.Node{
					cmp.Text(" You can also email "),
					g.A(g.Href("mailto:"+settings.Email), g.Class("text-cyan-300 hover:underline"), cmp.Text(settings.Email)),
					cmp.Text("."),
				})),
			),
			components.ContactForm(form),
		),
	)
}
