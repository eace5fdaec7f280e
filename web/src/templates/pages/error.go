package pages

import (
	"net/http"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/web/src/templates/components"
	"github.com/nfrund/folio/web/src/templates/layouts"
)

// Error renders a plain error page for the given status code.
func Error(base layouts.BaseProps, code int, message string) cmp.Node {
	if message == "" {
		message = http.StatusText(code)
	}
	title := "Something went wrong"
	if code == http.StatusNotFound {
		title = "Page not found"
	}
	base.Title = title

	return layouts.Base(base,
		components.Section("error", "",
			g.Div(
				g.Class("py-24 text-center"),
				g.P(g.Class("text-6xl font-extrabold text-cyan-400"), cmp.Textf("%d", code)),
				g.H1(g.Class("mt-4 text-3xl font-bold"), cmp.Text(title)),
				g.P(g.Class("mt-2 text-slate-400"), cmp.Text(message)),
				g.A(g.Href("/"), g.Class("mt-8 inline-block text-cyan-300 hover:underline"), cmp.Text("Back home")),
			),
		),
	)
}
