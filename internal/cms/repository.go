package cms

import (
	"context"
	"fmt"
	"time"

	"github.com/nfrund/folio/internal/domain"
)

var (
	_ domain.ContentRepository = (*Repository)(nil)
	_ domain.SubmissionWriter  = (*Repository)(nil)
)

// Repository reads portfolio content from the CMS and writes contact submissions back.
type Repository struct {
	client *Client
}

// NewRepository creates a Repository on top of client.
func NewRepository(client *Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) Skills(ctx context.Context) ([]domain.Skill, error) {
	var skills []domain.Skill
	if err := r.client.Query(ctx, skillsQuery, nil, &skills); err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	return orEmpty(skills), nil
}

func (r *Repository) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	if err := r.client.Query(ctx, testimonialsQuery, nil, &testimonials); err != nil {
		return nil, fmt.Errorf("failed to fetch testimonials: %w", err)
	}
	for i := range testimonials {
		testimonials[i].Avatar = r.client.ImageURL(testimonials[i].Avatar)
	}
	return orEmpty(testimonials), nil
}

func (r *Repository) Experience(ctx context.Context) ([]domain.Experience, error) {
	var experience []domain.Experience
	if err := r.client.Query(ctx, experienceQuery, nil, &experience); err != nil {
		return nil, fmt.Errorf("failed to fetch experience: %w", err)
	}
	return orEmpty(experience), nil
}

func (r *Repository) Education(ctx context.Context) ([]domain.Education, error) {
	var education []domain.Education
	if err := r.client.Query(ctx, educationQuery, nil, &education); err != nil {
		return nil, fmt.Errorf("failed to fetch education: %w", err)
	}
	return orEmpty(education), nil
}

func (r *Repository) Projects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := r.client.Query(ctx, projectsQuery, nil, &projects); err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	for i := range projects {
		r.resolveImages(&projects[i])
	}
	return orEmpty(projects), nil
}

func (r *Repository) ProjectBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	var project *domain.Project
	if err := r.client.Query(ctx, projectBySlugQuery, map[string]any{"slug": slug}, &project); err != nil {
		return nil, fmt.Errorf("failed to fetch project %q: %w", slug, err)
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	r.resolveImages(project)
	return project, nil
}

func (r *Repository) SiteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	var settings *domain.SiteSettings
	if err := r.client.Query(ctx, siteSettingsQuery, nil, &settings); err != nil {
		return nil, fmt.Errorf("failed to fetch site settings: %w", err)
	}
	if settings == nil {
		return nil, domain.ErrNotFound
	}
	settings.Avatar = r.client.ImageURL(settings.Avatar)
	return settings, nil
}

// CreateSubmission stores a contact form message as a CMS document.
func (r *Repository) CreateSubmission(ctx context.Context, sub *domain.ContactSubmission) error {
	doc := map[string]any{
		"_type":       submissionType,
		"name":        sub.Name,
		"email":       sub.Email,
		"subject":     sub.Subject,
		"message":     sub.Message,
		"submittedAt": sub.SubmittedAt.UTC().Format(time.RFC3339),
		"remoteIp":    sub.RemoteIP,
		"userAgent":   sub.UserAgent,
	}
	if sub.ID != "" {
		doc["_id"] = sub.ID
	}

	res, err := r.client.Mutate(ctx, Create(doc))
	if err != nil {
		return fmt.Errorf("failed to create contact submission: %w", err)
	}
	if sub.ID == "" && len(res.DocumentIDs) > 0 {
		sub.ID = res.DocumentIDs[0]
	}
	return nil
}

func (r *Repository) resolveImages(p *domain.Project) {
	p.CoverImage = r.client.ImageURL(p.CoverImage)
	for i, ref := range p.Gallery {
		p.Gallery[i] = r.client.ImageURL(ref)
	}
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
