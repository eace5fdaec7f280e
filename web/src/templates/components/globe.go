package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/internal/globe"
)

// Globe is the rotating globe drawn by /static/js/globe.js. The list below the
// canvas names the same places for readers without canvas support.
func Globe(scene globe.Scene) cmp.Node {
	if scene.Origin == nil {
		return nil
	}
	return g.Div(
		g.Class("grid gap-8 md:grid-cols-2 items-center"),
		g.Canvas(
			g.ID("globe-canvas"),
			g.Class("aspect-square w-full"),
			g.Width("600"),
			g.Height("600"),
			cmp.Attr("data-scene", "globe-scene"),
			cmp.Attr("data-src", "/api/globe/arcs"),
			cmp.Attr("aria-hidden", "true"),
		),
		g.Ul(
			g.Class("space-y-2 text-slate-300"),
			g.Li(g.Strong(cmp.Text("Based in ")), cmp.Text(originLabel(scene.Origin))),
			cmp.Map(scene.Arcs, func(a globe.Arc) cmp.Node {
				return g.Li(cmp.Textf("%s · %.0f km", a.Label, a.DistanceKm))
			}),
		),
		jsonScript("globe-scene", scene),
	)
}

func originLabel(p *globe.Point) string {
	if p.Label != "" {
		return p.Label
	}
	return "somewhere on Earth"
}
