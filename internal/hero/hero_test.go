package hero

import (
	"math"
	"sort"
	"testing"

	"github.com/nfrund/folio/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFromSettings(t *testing.T) {
	t.Run("empty settings use defaults", func(t *testing.T) {
		seq := FromSettings(domain.HeroSettings{})
		assert.Equal(t, DefaultFrameCount, seq.Count)
		assert.Equal(t, DefaultFramePattern, seq.Pattern)
		assert.Equal(t, DefaultWidth, seq.Width)
	})

	t.Run("invalid pattern falls back", func(t *testing.T) {
		for _, p := range []string{"/frames/%s.jpg", "/frames/%d-%d.jpg", "/frames/static.jpg"} {
			seq := FromSettings(domain.HeroSettings{FrameCount: 10, FramePattern: p})
			assert.Equal(t, DefaultFramePattern, seq.Pattern, p)
			assert.Equal(t, 10, seq.Count)
		}
	})

	t.Run("valid pattern is kept", func(t *testing.T) {
		seq := FromSettings(domain.HeroSettings{FramePattern: "https://cdn.example.com/hero/%03d.jpg"})
		assert.Equal(t, "https://cdn.example.com/hero/%03d.jpg", seq.Pattern)
	})
}

func TestSequence_FrameURL(t *testing.T) {
	seq := Sequence{Count: 3, Pattern: "/hero/%04d.webp"}
	assert.Equal(t, "/hero/0001.webp", seq.FrameURL(0), "files are numbered from one")
	assert.Equal(t, "/hero/0003.webp", seq.FrameURL(2))
	assert.Equal(t, "/hero/0003.webp", seq.FrameURL(99), "clamped to the last frame")
	assert.Equal(t, "/hero/0001.webp", seq.FrameURL(-4))
}

func TestSequence_FrameForProgress(t *testing.T) {
	seq := Sequence{Count: 101, Pattern: DefaultFramePattern}

	tests := []struct {
		progress float64
		want     int
	}{
		{0, 0},
		{0.5, 50},
		{1, 100},
		{-0.3, 0},
		{1.7, 100},
		{0.004, 0},
		{0.006, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, seq.FrameForProgress(tt.progress), "progress %v", tt.progress)
	}
}

func TestSequence_PreloadOrder(t *testing.T) {
	seq := Sequence{Count: 10, Pattern: DefaultFramePattern}
	order := seq.PreloadOrder()

	assert.Equal(t, []int{0, 9, 8}, order[:3], "ends first, then the coarsest stride")

	sorted := append([]int(nil), order...)
	sort.Ints(sorted)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted, "every frame exactly once")

	assert.Equal(t, []int{0}, Sequence{Count: 1}.PreloadOrder())
}

func TestSequence_Manifest(t *testing.T) {
	m := Sequence{Count: 4, Pattern: "/f/%d.png", Width: 640, Height: 360}.Manifest()
	assert.Equal(t, 4, m.FrameCount)
	assert.Equal(t, []string{"/f/1.png", "/f/2.png", "/f/3.png", "/f/4.png"}, m.Frames)
	assert.Len(t, m.Preload, 4)
}
