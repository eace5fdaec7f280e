// Package components holds the presentational building blocks shared by pages.
package components

import (
	"encoding/json"
	"log/slog"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/view"
)

// Section is a titled page section with an anchor id.
func Section(id, title string, children ...cmp.Node) cmp.Node {
	return g.Section(
		g.ID(id),
		g.Class("container mx-auto px-6 py-16"),
		cmp.If(title != "", g.H2(g.Class("text-3xl font-bold mb-8"), cmp.Text(title))),
		cmp.Group(children),
	)
}

// EmptyState is shown in place of a section whose content is unavailable.
func EmptyState(message string) cmp.Node {
	return g.P(g.Class("text-slate-500 italic"), cmp.Text(message))
}

// Flash renders pending flash messages.
func Flash(f view.FlashData) cmp.Node {
	if f.Empty() {
		return nil
	}
	return g.Div(
		g.ID("flash"),
		g.Class("container mx-auto px-6 pt-4 space-y-2"),
		cmp.Map(f.Success, func(msg string) cmp.Node {
			return g.Div(g.Class("rounded-lg bg-emerald-900/60 border border-emerald-700 px-4 py-3"), cmp.Attr("role", "status"), cmp.Text(msg))
		}),
		cmp.Map(f.Error, func(msg string) cmp.Node {
			return g.Div(g.Class("rounded-lg bg-rose-900/60 border border-rose-700 px-4 py-3"), cmp.Attr("role", "alert"), cmp.Text(msg))
		}),
	)
}

// SocialLinks renders the outbound profile links.
func SocialLinks(links []domain.SocialLink) cmp.Node {
	if len(links) == 0 {
		return nil
	}
	return g.Ul(
		g.Class("flex gap-4"),
		cmp.Map(links, func(l domain.SocialLink) cmp.Node {
			return g.Li(g.A(
				g.Href(l.URL),
				g.Target("_blank"),
				g.Rel("noopener noreferrer"),
				g.Class("hover:text-cyan-300"),
				cmp.Text(l.Label),
			))
		}),
	)
}

// Tags renders a list of small technology badges.
func Tags(tags []string) cmp.Node {
	if len(tags) == 0 {
		return nil
	}
	return g.Ul(
		g.Class("flex flex-wrap gap-2"),
		cmp.Map(tags, func(t string) cmp.Node {
			return g.Li(g.Class("rounded-full bg-slate-800 px-3 py-1 text-xs text-cyan-200"), cmp.Text(t))
		}),
	)
}

// jsonScript embeds v as a JSON data island for the page scripts.
// encoding/json escapes <, > and & so the payload cannot close the script element.
func jsonScript(id string, v any) cmp.Node {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to encode data island", "id", id, "error", err)
		return nil
	}
	return g.Script(g.ID(id), g.Type("application/json"), cmp.Raw(string(data)))
}
