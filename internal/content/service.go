// Package content fetches portfolio sections from a content source and
// shapes them into page view models.
package content

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/globe"
	"github.com/nfrund/folio/internal/hero"
	"github.com/nfrund/folio/internal/markdown"
)

const (
	homeProjectLimit = 6
	otherCategory    = "Other"
)

// Service builds page view models. Sections are fetched concurrently on
// every call; a section that fails is logged and rendered empty.
type Service struct {
	repo      domain.ContentRepository
	md        *markdown.Renderer
	globeOpts globe.Options
	observe   FetchObserver
}

// FetchObserver is told about every section fetch and its outcome.
type FetchObserver func(section string, d time.Duration, err error)

// ObserveFetches registers fn to be called after every section fetch.
func (s *Service) ObserveFetches(fn FetchObserver) {
	s.observe = fn
}

func (s *Service) record(section string, start time.Time, err error) {
	if s.observe != nil {
		s.observe(section, time.Since(start), err)
	}
}

// NewService creates a content service on top of repo.
func NewService(repo domain.ContentRepository, md *markdown.Renderer) *Service {
	if md == nil {
		md = markdown.New()
	}
	return &Service{
		repo:      repo,
		md:        md,
		globeOpts: globe.DefaultOptions(),
	}
}

// Home assembles the landing page.
func (s *Service) Home(ctx context.Context) (*HomePage, error) {
	var (
		g            errgroup.Group
		settings     domain.SiteSettings
		skills       []domain.Skill
		experience   []domain.Experience
		projects     []domain.Project
		testimonials []domain.Testimonial
	)
	g.Go(func() error { settings = s.Settings(ctx); return nil })
	fetch(ctx, s, &g, "skills", &skills, s.repo.Skills)
	fetch(ctx, s, &g, "experience", &experience, s.repo.Experience)
	fetch(ctx, s, &g, "projects", &projects, s.repo.Projects)
	fetch(ctx, s, &g, "testimonials", &testimonials, s.repo.Testimonials)
	_ = g.Wait()

	return &HomePage{
		Settings:     settings,
		Hero:         hero.FromSettings(settings.Hero).Manifest(),
		Skills:       s.groupSkills(skills),
		Experience:   experience,
		Projects:     featured(projects, homeProjectLimit),
		Testimonials: testimonials,
		Globe:        globe.FromContent(settings, experience, s.globeOpts),
	}, nil
}

// About assembles the about page.
func (s *Service) About(ctx context.Context) (*AboutPage, error) {
	var (
		g          errgroup.Group
		settings   domain.SiteSettings
		skills     []domain.Skill
		experience []domain.Experience
		education  []domain.Education
	)
	g.Go(func() error { settings = s.Settings(ctx); return nil })
	fetch(ctx, s, &g, "skills", &skills, s.repo.Skills)
	fetch(ctx, s, &g, "experience", &experience, s.repo.Experience)
	fetch(ctx, s, &g, "education", &education, s.repo.Education)
	_ = g.Wait()

	return &AboutPage{
		Settings:   settings,
		BioHTML:    s.md.MustRender(settings.Bio),
		Skills:     s.groupSkills(skills),
		Experience: experience,
		Education:  education,
	}, nil
}

// Projects assembles the project grid.
func (s *Service) Projects(ctx context.Context) (*ProjectsPage, error) {
	var (
		g        errgroup.Group
		settings domain.SiteSettings
		projects []domain.Project
	)
	g.Go(func() error { settings = s.Settings(ctx); return nil })
	fetch(ctx, s, &g, "projects", &projects, s.repo.Projects)
	_ = g.Wait()

	return &ProjectsPage{
		Settings:     settings,
		Projects:     projects,
		Technologies: technologies(projects),
	}, nil
}

// Project loads one project by slug. It returns domain.ErrNotFound when the
// slug is unknown; other source failures are returned as is.
func (s *Service) Project(ctx context.Context, slug string) (*ProjectPage, error) {
	var (
		g        errgroup.Group
		settings domain.SiteSettings
		project  *domain.Project
	)
	g.Go(func() error { settings = s.Settings(ctx); return nil })
	g.Go(func() error {
		start := time.Now()
		var err error
		project, err = s.repo.ProjectBySlug(ctx, slug)
		if !errors.Is(err, domain.ErrNotFound) {
			s.record("project", start, err)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.ErrorContext(ctx, "Failed to fetch project", "slug", slug, "error", err)
		}
		return nil, err
	}

	body, err := s.md.Render(project.Body)
	if err != nil {
		slog.WarnContext(ctx, "Failed to render project body", "slug", slug, "error", err)
	}

	return &ProjectPage{
		Settings: settings,
		Project:  ProjectDetail{Project: *project, BodyHTML: body},
	}, nil
}

// Settings fetches the site settings with defaults applied. It never fails.
func (s *Service) Settings(ctx context.Context) domain.SiteSettings {
	start := time.Now()
	settings, err := s.repo.SiteSettings(ctx)
	if !errors.Is(err, domain.ErrNotFound) {
		s.record("settings", start, err)
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		slog.DebugContext(ctx, "No site settings document, using defaults")
		return domain.SiteSettings{}.WithDefaults()
	case err != nil:
		slog.ErrorContext(ctx, "Failed to fetch content section", "section", "settings", "error", err)
		return domain.SiteSettings{}.WithDefaults()
	}
	return settings.WithDefaults()
}

// Hero returns the frame manifest for the hero canvas.
func (s *Service) Hero(ctx context.Context) hero.Manifest {
	return hero.FromSettings(s.Settings(ctx).Hero).Manifest()
}

// Globe returns the arcs drawn on the globe.
func (s *Service) Globe(ctx context.Context) globe.Scene {
	var (
		g          errgroup.Group
		settings   domain.SiteSettings
		experience []domain.Experience
	)
	g.Go(func() error { settings = s.Settings(ctx); return nil })
	fetch(ctx, s, &g, "experience", &experience, s.repo.Experience)
	_ = g.Wait()

	return globe.FromContent(settings, experience, s.globeOpts)
}

// fetch runs one section fetch on g. Errors are logged and leave the section
// empty so that the other sections still render.
func fetch[T any](ctx context.Context, s *Service, g *errgroup.Group, section string, dst *[]T, fn func(context.Context) ([]T, error)) {
	g.Go(func() error {
		start := time.Now()
		items, err := fn(ctx)
		s.record(section, start, err)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to fetch content section", "section", section, "error", err)
			items = nil
		}
		if items == nil {
			items = []T{}
		}
		*dst = items
		return nil
	})
}

// groupSkills buckets skills by category, keeping the first-seen order of
// categories and skills. Categories are title cased.
func (s *Service) groupSkills(skills []domain.Skill) []SkillGroup {
	// Casers are stateful and must not be shared between requests.
	title := cases.Title(language.English, cases.NoLower)
	groups := []SkillGroup{}
	index := map[string]int{}
	for _, sk := range skills {
		cat := strings.TrimSpace(sk.Category)
		if cat == "" {
			cat = otherCategory
		}
		cat = title.String(cat)
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, SkillGroup{Category: cat})
		}
		groups[i].Skills = append(groups[i].Skills, sk)
	}
	return groups
}

// featured picks the featured projects, or the first ones when none are flagged.
func featured(projects []domain.Project, limit int) []domain.Project {
	out := []domain.Project{}
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = append(out, projects...)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// technologies lists the distinct technologies across projects, sorted.
func technologies(projects []domain.Project) []string {
	out := []string{}
	for _, p := range projects {
		for _, t := range p.Technologies {
			if t != "" && !slices.Contains(out, t) {
				out = append(out, t)
			}
		}
	}
	slices.SortFunc(out, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return out
}
