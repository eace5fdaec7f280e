// Package hero describes the image sequence scrubbed by the hero canvas.
// The browser draws frames; the server decides which frames exist, where they
// live, and in which order they should be preloaded.
package hero

import (
	"fmt"
	"math"
	"strings"

	"github.com/nfrund/folio/internal/domain"
)

// Defaults used when the site settings leave the sequence unconfigured.
const (
	DefaultFrameCount   = 120
	DefaultFramePattern = "/static/hero/frame_%04d.webp"
	DefaultWidth        = 1920
	DefaultHeight       = 1080
)

// Sequence is a numbered run of frames. Frame files are numbered from 1.
type Sequence struct {
	Count   int
	Pattern string
	Width   int
	Height  int
}

// Manifest is the JSON document consumed by the hero script.
type Manifest struct {
	FrameCount int      `json:"frameCount"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Frames     []string `json:"frames"`
	Preload    []int    `json:"preload"`
}

// FromSettings builds a Sequence, falling back to defaults field by field.
func FromSettings(s domain.HeroSettings) Sequence {
	seq := Sequence{
		Count:   s.FrameCount,
		Pattern: s.FramePattern,
		Width:   s.Width,
		Height:  s.Height,
	}
	if seq.Count <= 0 {
		seq.Count = DefaultFrameCount
	}
	if !validPattern(seq.Pattern) {
		seq.Pattern = DefaultFramePattern
	}
	if seq.Width <= 0 || seq.Height <= 0 {
		seq.Width, seq.Height = DefaultWidth, DefaultHeight
	}
	return seq
}

// validPattern accepts patterns with exactly one integer verb, e.g. %d or %04d.
func validPattern(p string) bool {
	if p == "" || strings.Count(p, "%") != 1 {
		return false
	}
	i := strings.Index(p, "%")
	rest := strings.TrimLeft(p[i+1:], "0123456789")
	return strings.HasPrefix(rest, "d")
}

// FrameURL returns the URL of the frame at the zero-based index i.
// Indexes are clamped into range.
func (s Sequence) FrameURL(i int) string {
	return fmt.Sprintf(s.Pattern, s.clamp(i)+1)
}

// FrameForProgress maps scroll progress in [0, 1] to a frame index.
// Out of range and NaN progress values clamp to the first or last frame.
func (s Sequence) FrameForProgress(progress float64) int {
	if math.IsNaN(progress) || progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return s.Count - 1
	}
	return s.clamp(int(math.Round(progress * float64(s.Count-1))))
}

// PreloadOrder lists every frame index coarse to fine: first and last, then
// the midpoints of ever smaller strides. A partially loaded sequence can still
// scrub at low temporal resolution.
func (s Sequence) PreloadOrder() []int {
	if s.Count <= 0 {
		return nil
	}
	seen := make([]bool, s.Count)
	order := make([]int, 0, s.Count)
	add := func(i int) {
		if !seen[i] {
			seen[i] = true
			order = append(order, i)
		}
	}

	last := s.Count - 1
	add(0)
	add(last)
	stride := 1
	for stride*2 <= last {
		stride *= 2
	}
	for ; stride >= 1; stride /= 2 {
		for i := 0; i <= last; i += stride {
			add(i)
		}
	}
	return order
}

// Manifest returns the full description of the sequence for the client.
func (s Sequence) Manifest() Manifest {
	frames := make([]string, s.Count)
	for i := range frames {
		frames[i] = s.FrameURL(i)
	}
	return Manifest{
		FrameCount: s.Count,
		Width:      s.Width,
		Height:     s.Height,
		Frames:     frames,
		Preload:    s.PreloadOrder(),
	}
}

func (s Sequence) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= s.Count {
		return s.Count - 1
	}
	return i
}
