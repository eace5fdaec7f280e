// Package filesource serves portfolio content from a single YAML document.
// It backs local development and tests, and can hot reload the file.
package filesource

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"github.com/nfrund/folio/internal/domain"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var (
	_ domain.ContentRepository = (*Source)(nil)
	_ domain.SubmissionWriter  = (*Source)(nil)
)

// document is the on-disk layout of the content file.
type document struct {
	Settings     *domain.SiteSettings `yaml:"settings"`
	Skills       []domain.Skill       `yaml:"skills"`
	Testimonials []domain.Testimonial `yaml:"testimonials"`
	Experience   []domain.Experience  `yaml:"experience"`
	Education    []domain.Education   `yaml:"education"`
	Projects     []domain.Project     `yaml:"projects"`
}

// Source is a ContentRepository backed by a YAML file on an afero filesystem.
type Source struct {
	fs   afero.Fs
	path string

	mu  sync.RWMutex
	doc *document
}

// New creates a Source and performs the initial load.
func New(fs afero.Fs, path string) (*Source, error) {
	s := &Source{fs: fs, path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the content file location.
func (s *Source) Path() string {
	return s.path
}

// Reload re-reads the content file. On failure the previous document stays in place.
func (s *Source) Reload() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("failed to read content file %s: %w", s.path, err)
	}

	doc := &document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse content file %s: %w", s.path, err)
	}
	sortDocument(doc)

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	slog.Debug("Content file loaded", "path", s.path, "projects", len(doc.Projects), "skills", len(doc.Skills))
	return nil
}

func (s *Source) current() *document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

func (s *Source) Skills(ctx context.Context) ([]domain.Skill, error) {
	return slices.Clone(orEmpty(s.current().Skills)), nil
}

func (s *Source) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return slices.Clone(orEmpty(s.current().Testimonials)), nil
}

func (s *Source) Experience(ctx context.Context) ([]domain.Experience, error) {
	return slices.Clone(orEmpty(s.current().Experience)), nil
}

func (s *Source) Education(ctx context.Context) ([]domain.Education, error) {
	return slices.Clone(orEmpty(s.current().Education)), nil
}

// Projects returns the project list without bodies, matching the other sources.
func (s *Source) Projects(ctx context.Context) ([]domain.Project, error) {
	projects := slices.Clone(orEmpty(s.current().Projects))
	for i := range projects {
		projects[i].Body = ""
	}
	return projects, nil
}

func (s *Source) ProjectBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	for _, p := range s.current().Projects {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Source) SiteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	settings := s.current().Settings
	if settings == nil {
		return nil, domain.ErrNotFound
	}
	copied := *settings
	return &copied, nil
}

// CreateSubmission writes the submission as its own YAML file in a
// "submissions" directory next to the content file.
func (s *Source) CreateSubmission(ctx context.Context, sub *domain.ContactSubmission) error {
	if sub.ID == "" {
		return fmt.Errorf("submission id is required")
	}
	dir := filepath.Join(filepath.Dir(s.path), "submissions")
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create submissions directory: %w", err)
	}

	data, err := yaml.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}
	name := filepath.Join(dir, sub.ID+".yaml")
	if err := afero.WriteFile(s.fs, name, data, 0o644); err != nil {
		return fmt.Errorf("failed to write submission: %w", err)
	}
	return nil
}

func sortDocument(doc *document) {
	slices.SortStableFunc(doc.Skills, func(a, b domain.Skill) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.Name, b.Name))
	})
	slices.SortStableFunc(doc.Testimonials, func(a, b domain.Testimonial) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.Author, b.Author))
	})
	slices.SortStableFunc(doc.Experience, func(a, b domain.Experience) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(b.StartDate, a.StartDate))
	})
	slices.SortStableFunc(doc.Education, func(a, b domain.Education) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(b.StartDate, a.StartDate))
	})
	slices.SortStableFunc(doc.Projects, func(a, b domain.Project) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(b.Year, a.Year))
	})
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
