package database

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/nfrund/folio/internal/domain"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// Table names for the self-hosted content source.
const (
	skillTable       = "skill"
	testimonialTable = "testimonial"
	experienceTable  = "experience"
	educationTable   = "education"
	projectTable     = "project"
	settingsTable    = "site_settings"
	submissionTable  = "contact_submission"
)

var (
	_ domain.ContentRepository = (*ContentStore)(nil)
	_ domain.SubmissionWriter  = (*ContentStore)(nil)
)

// ContentStore serves portfolio content from SurrealDB tables. Records keep
// their sort key in a "position" field; ordering happens after the read.
type ContentStore struct {
	db *surrealdb.DB
}

// NewContentStore creates a ContentStore on an open connection.
func NewContentStore(db *surrealdb.DB) *ContentStore {
	return &ContentStore{db: db}
}

func (s *ContentStore) Skills(ctx context.Context) ([]domain.Skill, error) {
	rows, err := Query[skillRow](ctx, s.db, "SELECT * FROM "+skillTable, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	skills := mapRows(rows, skillRow.toDomain)
	slices.SortStableFunc(skills, func(a, b domain.Skill) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.Name, b.Name))
	})
	return skills, nil
}

func (s *ContentStore) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := Query[testimonialRow](ctx, s.db, "SELECT * FROM "+testimonialTable, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch testimonials: %w", err)
	}
	testimonials := mapRows(rows, testimonialRow.toDomain)
	slices.SortStableFunc(testimonials, func(a, b domain.Testimonial) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.Author, b.Author))
	})
	return testimonials, nil
}

func (s *ContentStore) Experience(ctx context.Context) ([]domain.Experience, error) {
	rows, err := Query[experienceRow](ctx, s.db, "SELECT * FROM "+experienceTable, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experience: %w", err)
	}
	experience := mapRows(rows, experienceRow.toDomain)
	slices.SortStableFunc(experience, func(a, b domain.Experience) int {
		// Newest first within the same position.
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(b.StartDate, a.StartDate))
	})
	return experience, nil
}

func (s *ContentStore) Education(ctx context.Context) ([]domain.Education, error) {
	rows, err := Query[educationRow](ctx, s.db, "SELECT * FROM "+educationTable, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch education: %w", err)
	}
	education := mapRows(rows, educationRow.toDomain)
	slices.SortStableFunc(education, func(a, b domain.Education) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(b.StartDate, a.StartDate))
	})
	return education, nil
}

func (s *ContentStore) Projects(ctx context.Context) ([]domain.Project, error) {
	rows, err := Query[projectRow](ctx, s.db, "SELECT * OMIT body FROM "+projectTable, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	projects := mapRows(rows, projectRow.toDomain)
	slices.SortStableFunc(projects, func(a, b domain.Project) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(b.Year, a.Year))
	})
	return projects, nil
}

func (s *ContentStore) ProjectBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	query := "SELECT * FROM " + projectTable + " WHERE slug = $slug LIMIT 1"
	row, err := QueryOne[projectRow](ctx, s.db, query, map[string]any{"slug": slug})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project %q: %w", slug, err)
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	project := row.toDomain()
	return &project, nil
}

func (s *ContentStore) SiteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	row, err := QueryOne[settingsRow](ctx, s.db, "SELECT * FROM "+settingsTable+" LIMIT 1", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch site settings: %w", err)
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return &row.SiteSettings, nil
}

// CreateSubmission inserts a contact form message. The submission id becomes
// the record key so the record can be correlated with notification logs.
func (s *ContentStore) CreateSubmission(ctx context.Context, sub *domain.ContactSubmission) error {
	data := map[string]any{
		"name":         sub.Name,
		"email":        sub.Email,
		"subject":      sub.Subject,
		"message":      sub.Message,
		"submitted_at": surrealmodels.CustomDateTime{Time: sub.SubmittedAt.UTC()},
		"remote_ip":    sub.RemoteIP,
		"user_agent":   sub.UserAgent,
	}
	params := map[string]any{"data": data}

	query := "CREATE " + submissionTable + " CONTENT $data"
	if sub.ID != "" {
		params["id"] = surrealmodels.NewRecordID(submissionTable, sub.ID)
		query = "CREATE $id CONTENT $data"
	}
	if err := Execute(ctx, s.db, query, params); err != nil {
		return fmt.Errorf("failed to create contact submission: %w", err)
	}
	return nil
}

func mapRows[R, T any](rows []R, fn func(R) T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, fn(r))
	}
	return out
}

// recordKey extracts the key part of a record id ("skill:go" -> "go").
func recordKey(id *surrealmodels.RecordID) string {
	if id == nil {
		return ""
	}
	return fmt.Sprint(id.ID)
}
