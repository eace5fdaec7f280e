package components

import (
	"strings"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/internal/domain"
)

// Testimonials renders quotes as cards. An empty list renders nothing.
func Testimonials(items []domain.Testimonial) cmp.Node {
	if len(items) == 0 {
		return nil
	}
	return g.Div(
		g.Class("grid gap-6 md:grid-cols-2"),
		cmp.Map(items, func(t domain.Testimonial) cmp.Node {
			return cmp.El("figure",
				g.Class("rounded-xl border border-slate-800 p-6"),
				cmp.El("blockquote", g.Class("text-slate-200 italic"), cmp.Textf("“%s”", t.Quote)),
				cmp.El("figcaption",
					g.Class("mt-4 flex items-center gap-3 text-sm"),
					avatar(t.Avatar, t.Author),
					g.Div(
						g.Strong(cmp.Text(t.Author)),
						cmp.If(byline(t) != "", g.Div(g.Class("text-slate-400"), cmp.Text(byline(t)))),
					),
				),
			)
		}),
	)
}

func byline(t domain.Testimonial) string {
	parts := make([]string, 0, 2)
	if t.Role != "" {
		parts = append(parts, t.Role)
	}
	if t.Company != "" {
		parts = append(parts, t.Company)
	}
	return strings.Join(parts, ", ")
}

// avatar falls back to the author's initial when there is no image.
func avatar(src, name string) cmp.Node {
	if src != "" {
		return g.Img(g.Src(src), g.Alt(name), g.Class("h-10 w-10 rounded-full object-cover"), cmp.Attr("loading", "lazy"))
	}
	initial := "?"
	if name != "" {
		initial = strings.ToUpper(string([]rune(name)[:1]))
	}
	return g.Span(
		g.Class("flex h-10 w-10 items-center justify-center rounded-full bg-slate-700 font-semibold"),
		cmp.Attr("aria-hidden", "true"),
		cmp.Text(initial),
	)
}
