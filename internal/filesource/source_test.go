package filesource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nfrund/folio/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContent = `
settings:
  title: Ada Lovelace
  tagline: Analytical engines, modern stacks
  originLat: 51.5072
  originLng: -0.1276
  hero:
    frameCount: 120
skills:
  - id: sql
    name: SQL
    order: 2
  - id: go
    name: Go
    order: 1
projects:
  - id: p-old
    slug: engine
    title: Difference Engine
    year: 2019
    body: "## Gears"
  - id: p-new
    slug: folio
    title: Folio
    year: 2024
    featured: true
    body: "# Folio"
`

func newMemSource(t *testing.T, content string) (*Source, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "content/site.yaml", []byte(content), 0o644))
	src, err := New(fs, "content/site.yaml")
	require.NoError(t, err)
	return src, fs
}

func TestSource_Reads(t *testing.T) {
	src, _ := newMemSource(t, sampleContent)
	ctx := context.Background()

	skills, err := src.Skills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "Go", skills[0].Name, "skills are sorted by order")

	projects, err := src.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "folio", projects[0].Slug, "newest project first")
	assert.Empty(t, projects[0].Body, "listing omits bodies")

	project, err := src.ProjectBySlug(ctx, "engine")
	require.NoError(t, err)
	assert.Equal(t, "## Gears", project.Body)

	_, err = src.ProjectBySlug(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	settings, err := src.SiteSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", settings.Title)
	require.NotNil(t, settings.OriginLat)
	assert.InDelta(t, 51.5072, *settings.OriginLat, 1e-9)

	testimonials, err := src.Testimonials(ctx)
	require.NoError(t, err)
	assert.NotNil(t, testimonials)
	assert.Empty(t, testimonials)
}

func TestSource_TestimonialsTieBreakByAuthor(t *testing.T) {
	src, _ := newMemSource(t, `
testimonials:
  - {id: t1, author: Zed, quote: Later, order: 1}
  - {id: t2, author: Amy, quote: Earlier, order: 1}
  - {id: t3, author: Bob, quote: First, order: 0}
`)

	testimonials, err := src.Testimonials(context.Background())
	require.NoError(t, err)
	require.Len(t, testimonials, 3)
	assert.Equal(t, "Bob", testimonials[0].Author)
	assert.Equal(t, "Amy", testimonials[1].Author)
	assert.Equal(t, "Zed", testimonials[2].Author)
}

func TestSource_MissingSettings(t *testing.T) {
	src, _ := newMemSource(t, "skills: []\n")
	_, err := src.SiteSettings(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSource_ReloadKeepsPreviousOnError(t *testing.T) {
	src, fs := newMemSource(t, sampleContent)

	require.NoError(t, afero.WriteFile(fs, "content/site.yaml", []byte("skills: [unclosed"), 0o644))
	assert.Error(t, src.Reload())

	skills, err := src.Skills(context.Background())
	require.NoError(t, err)
	assert.Len(t, skills, 2)
}

func TestSource_NewFailsForMissingFile(t *testing.T) {
	_, err := New(afero.NewMemMapFs(), "content/missing.yaml")
	assert.ErrorContains(t, err, "failed to read content file")
}

func TestSource_CreateSubmission(t *testing.T) {
	src, fs := newMemSource(t, sampleContent)

	sub := &domain.ContactSubmission{
		ID:          "6f1c",
		Name:        "Charles",
		Email:       "charles@example.com",
		Message:     "About that engine...",
		SubmittedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, src.CreateSubmission(context.Background(), sub))

	data, err := afero.ReadFile(fs, "content/submissions/6f1c.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "charles@example.com")

	assert.Error(t, src.CreateSubmission(context.Background(), &domain.ContactSubmission{}), "id is required")
}

func TestSource_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleContent), 0o644))

	src, err := New(afero.NewOsFs(), path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- src.Watch(ctx) }()

	// Give the watcher a moment to register before touching the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("settings:\n  title: Reloaded\n"), 0o644))

	assert.Eventually(t, func() bool {
		settings, err := src.SiteSettings(context.Background())
		return err == nil && settings.Title == "Reloaded"
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
