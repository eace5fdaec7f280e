package globe

import (
	"testing"

	"github.com/nfrund/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	london = Point{Label: "London", Lat: 51.5072, Lng: -0.1276}
	nyc    = Point{Label: "New York", Lat: 40.7128, Lng: -74.0060}
	tokyo  = Point{Label: "Tokyo", Lat: 35.6762, Lng: 139.6503}
)

func ptr(f float64) *float64 { return &f }

func TestDistance(t *testing.T) {
	assert.Equal(t, 0.0, Distance(london, london))
	assert.InDelta(t, 5570, Distance(london, nyc), 15, "London to New York is about 5570 km")
	assert.InDelta(t, Distance(nyc, tokyo), Distance(tokyo, nyc), 1e-9, "distance is symmetric")

	antipode := Point{Lat: -london.Lat, Lng: london.Lng + 180}
	assert.InDelta(t, halfCircumferenceKm, Distance(london, antipode), 1)
}

func TestOptions_Altitude(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, opts.MinAltitude, opts.Altitude(0))
	assert.Equal(t, opts.MaxAltitude, opts.Altitude(halfCircumferenceKm*2), "clamped to max")
	assert.Less(t, opts.Altitude(Distance(london, nyc)), opts.Altitude(Distance(london, tokyo)), "longer arcs fly higher")
}

func TestBuildArcs(t *testing.T) {
	opts := DefaultOptions()
	dests := []Point{nyc, london, tokyo, {Label: "NYC again", Lat: 40.7129, Lng: -74.0061}}

	arcs := BuildArcs(london, dests, opts)
	require.Len(t, arcs, 2, "origin and repeated destinations are skipped")

	assert.Equal(t, "New York", arcs[0].Label)
	assert.Equal(t, 0, arcs[0].DelayMs)
	assert.Equal(t, "Tokyo", arcs[1].Label)
	assert.Equal(t, opts.StaggerMs, arcs[1].DelayMs)
	assert.Equal(t, opts.Palette[1], arcs[1].Color)
	assert.Equal(t, london.Lat, arcs[1].StartLat)
}

func TestFromContent(t *testing.T) {
	experience := []domain.Experience{
		{Company: "Analytical Co", Location: "New York", Lat: ptr(nyc.Lat), Lng: ptr(nyc.Lng)},
		{Company: "Remote Ltd"},
		{Company: "Engines KK", Lat: ptr(tokyo.Lat), Lng: ptr(tokyo.Lng)},
	}

	t.Run("origin from settings", func(t *testing.T) {
		settings := domain.SiteSettings{Location: "London", OriginLat: ptr(london.Lat), OriginLng: ptr(london.Lng)}
		scene := FromContent(settings, experience, DefaultOptions())

		require.NotNil(t, scene.Origin)
		assert.Equal(t, "London", scene.Origin.Label)
		assert.Len(t, scene.Points, 2, "entries without coordinates are left out")
		assert.Len(t, scene.Arcs, 2)
		assert.Equal(t, "Engines KK", scene.Arcs[1].Label, "company labels the point when location is empty")
	})

	t.Run("first located experience becomes origin", func(t *testing.T) {
		scene := FromContent(domain.SiteSettings{}, experience, DefaultOptions())
		require.NotNil(t, scene.Origin)
		assert.Equal(t, "New York", scene.Origin.Label)
		assert.Len(t, scene.Arcs, 1)
	})

	t.Run("nothing located", func(t *testing.T) {
		scene := FromContent(domain.SiteSettings{}, nil, DefaultOptions())
		assert.Nil(t, scene.Origin)
		assert.NotNil(t, scene.Arcs)
		assert.Empty(t, scene.Arcs)
	})
}
