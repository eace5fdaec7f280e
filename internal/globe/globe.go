// Package globe builds the arc data rendered by the rotating globe widget.
// Arcs connect the site owner's home base to every place they have worked.
package globe

import (
	"math"

	"github.com/nfrund/folio/internal/domain"
)

const (
	earthRadiusKm = 6371.0
	// halfCircumferenceKm is the longest possible great-circle distance.
	halfCircumferenceKm = math.Pi * earthRadiusKm
	// samePlaceKm treats points closer than this as the same location.
	samePlaceKm = 1.0
)

// Point is a labeled position in degrees.
type Point struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// Arc is one animated connection on the globe.
type Arc struct {
	Label      string  `json:"label"`
	StartLat   float64 `json:"startLat"`
	StartLng   float64 `json:"startLng"`
	EndLat     float64 `json:"endLat"`
	EndLng     float64 `json:"endLng"`
	DistanceKm float64 `json:"distanceKm"`
	Altitude   float64 `json:"altitude"`
	Order      int     `json:"order"`
	DelayMs    int     `json:"delayMs"`
	Color      string  `json:"color"`
}

// Scene is the document served to the globe script.
type Scene struct {
	Origin *Point  `json:"origin,omitempty"`
	Points []Point `json:"points"`
	Arcs   []Arc   `json:"arcs"`
}

// Options tune arc height, timing and colors.
type Options struct {
	MinAltitude float64
	MaxAltitude float64
	StaggerMs   int
	Palette     []string
}

// DefaultOptions matches the look of the site theme.
func DefaultOptions() Options {
	return Options{
		MinAltitude: 0.08,
		MaxAltitude: 0.5,
		StaggerMs:   400,
		Palette:     []string{"#06b6d4", "#3b82f6", "#a855f7"},
	}
}

// Distance returns the great-circle distance between a and b in kilometers.
func Distance(a, b Point) float64 {
	lat1, lat2 := radians(a.Lat), radians(b.Lat)
	dLat := lat2 - lat1
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Altitude scales arc height with distance, clamped to the option bounds.
func (o Options) Altitude(distanceKm float64) float64 {
	ratio := distanceKm / halfCircumferenceKm
	alt := o.MinAltitude + (o.MaxAltitude-o.MinAltitude)*ratio
	return math.Max(o.MinAltitude, math.Min(o.MaxAltitude, alt))
}

// BuildArcs connects origin to each destination. Destinations at the origin
// and repeats of an earlier destination are skipped.
func BuildArcs(origin Point, destinations []Point, opts Options) []Arc {
	arcs := make([]Arc, 0, len(destinations))
	for _, dest := range destinations {
		dist := Distance(origin, dest)
		if dist < samePlaceKm || seen(arcs, dest) {
			continue
		}
		n := len(arcs)
		arc := Arc{
			Label:      dest.Label,
			StartLat:   origin.Lat,
			StartLng:   origin.Lng,
			EndLat:     dest.Lat,
			EndLng:     dest.Lng,
			DistanceKm: math.Round(dist),
			Altitude:   opts.Altitude(dist),
			Order:      n,
			DelayMs:    n * opts.StaggerMs,
		}
		if len(opts.Palette) > 0 {
			arc.Color = opts.Palette[n%len(opts.Palette)]
		}
		arcs = append(arcs, arc)
	}
	return arcs
}

// FromContent derives the scene from site settings and experience entries.
// Without an origin the first located experience becomes the origin.
func FromContent(settings domain.SiteSettings, experience []domain.Experience, opts Options) Scene {
	points := make([]Point, 0, len(experience))
	for _, e := range experience {
		if e.Lat == nil || e.Lng == nil {
			continue
		}
		label := e.Location
		if label == "" {
			label = e.Company
		}
		points = append(points, Point{Label: label, Lat: *e.Lat, Lng: *e.Lng})
	}

	scene := Scene{Points: points, Arcs: []Arc{}}
	var origin Point
	switch {
	case settings.OriginLat != nil && settings.OriginLng != nil:
		origin = Point{Label: settings.Location, Lat: *settings.OriginLat, Lng: *settings.OriginLng}
	case len(points) > 0:
		origin = points[0]
	default:
		return scene
	}
	scene.Origin = &origin
	scene.Arcs = BuildArcs(origin, points, opts)
	return scene
}

func seen(arcs []Arc, p Point) bool {
	for _, a := range arcs {
		if Distance(Point{Lat: a.EndLat, Lng: a.EndLng}, p) < samePlaceKm {
			return true
		}
	}
	return false
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
