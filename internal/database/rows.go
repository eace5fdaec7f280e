package database

import (
	"github.com/nfrund/folio/internal/domain"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// Row types mirror the table layout. They differ from the domain types in the
// record id and the "position" sort field.

type skillRow struct {
	ID       *surrealmodels.RecordID `json:"id,omitempty"`
	Name     string                  `json:"name"`
	Category string                  `json:"category,omitempty"`
	Level    int                     `json:"level,omitempty"`
	Icon     string                  `json:"icon,omitempty"`
	Position int                     `json:"position,omitempty"`
}

func (r skillRow) toDomain() domain.Skill {
	return domain.Skill{
		ID:       recordKey(r.ID),
		Name:     r.Name,
		Category: r.Category,
		Level:    r.Level,
		Icon:     r.Icon,
		Order:    r.Position,
	}
}

type testimonialRow struct {
	ID       *surrealmodels.RecordID `json:"id,omitempty"`
	Author   string                  `json:"author"`
	Role     string                  `json:"role,omitempty"`
	Company  string                  `json:"company,omitempty"`
	Quote    string                  `json:"quote"`
	Avatar   string                  `json:"avatar,omitempty"`
	Position int                     `json:"position,omitempty"`
}

func (r testimonialRow) toDomain() domain.Testimonial {
	return domain.Testimonial{
		ID:      recordKey(r.ID),
		Author:  r.Author,
		Role:    r.Role,
		Company: r.Company,
		Quote:   r.Quote,
		Avatar:  r.Avatar,
		Order:   r.Position,
	}
}

type experienceRow struct {
	ID           *surrealmodels.RecordID `json:"id,omitempty"`
	Company      string                  `json:"company"`
	Role         string                  `json:"role"`
	Location     string                  `json:"location,omitempty"`
	Lat          *float64                `json:"lat,omitempty"`
	Lng          *float64                `json:"lng,omitempty"`
	StartDate    string                  `json:"start_date,omitempty"`
	EndDate      string                  `json:"end_date,omitempty"`
	Summary      string                  `json:"summary,omitempty"`
	Highlights   []string                `json:"highlights,omitempty"`
	Technologies []string                `json:"technologies,omitempty"`
	Position     int                     `json:"position,omitempty"`
}

func (r experienceRow) toDomain() domain.Experience {
	return domain.Experience{
		ID:           recordKey(r.ID),
		Company:      r.Company,
		Role:         r.Role,
		Location:     r.Location,
		Lat:          r.Lat,
		Lng:          r.Lng,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Summary:      r.Summary,
		Highlights:   r.Highlights,
		Technologies: r.Technologies,
		Order:        r.Position,
	}
}

type educationRow struct {
	ID          *surrealmodels.RecordID `json:"id,omitempty"`
	Institution string                  `json:"institution"`
	Degree      string                  `json:"degree,omitempty"`
	Field       string                  `json:"field,omitempty"`
	StartDate   string                  `json:"start_date,omitempty"`
	EndDate     string                  `json:"end_date,omitempty"`
	Summary     string                  `json:"summary,omitempty"`
	Position    int                     `json:"position,omitempty"`
}

func (r educationRow) toDomain() domain.Education {
	return domain.Education{
		ID:          recordKey(r.ID),
		Institution: r.Institution,
		Degree:      r.Degree,
		Field:       r.Field,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Summary:     r.Summary,
		Order:       r.Position,
	}
}

type projectRow struct {
	ID           *surrealmodels.RecordID `json:"id,omitempty"`
	Slug         string                  `json:"slug"`
	Title        string                  `json:"title"`
	Summary      string                  `json:"summary,omitempty"`
	Body         string                  `json:"body,omitempty"`
	CoverImage   string                  `json:"cover_image,omitempty"`
	Gallery      []string                `json:"gallery,omitempty"`
	Technologies []string                `json:"technologies,omitempty"`
	RepoURL      string                  `json:"repo_url,omitempty"`
	LiveURL      string                  `json:"live_url,omitempty"`
	Featured     bool                    `json:"featured,omitempty"`
	Year         int                     `json:"year,omitempty"`
	Position     int                     `json:"position,omitempty"`
}

func (r projectRow) toDomain() domain.Project {
	return domain.Project{
		ID:           recordKey(r.ID),
		Slug:         r.Slug,
		Title:        r.Title,
		Summary:      r.Summary,
		Body:         r.Body,
		CoverImage:   r.CoverImage,
		Gallery:      r.Gallery,
		Technologies: r.Technologies,
		RepoURL:      r.RepoURL,
		LiveURL:      r.LiveURL,
		Featured:     r.Featured,
		Year:         r.Year,
		Order:        r.Position,
	}
}

// settingsRow reuses the domain field names; only the record id is extra.
type settingsRow struct {
	ID *surrealmodels.RecordID `json:"id,omitempty"`
	domain.SiteSettings
}
