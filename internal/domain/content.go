package domain

import (
	"context"
	"fmt"
	"time"
)

// Skill is a single entry in the skills section.
type Skill struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category,omitempty" yaml:"category"`
	Level    int    `json:"level,omitempty" yaml:"level"` // 0-100, zero when unset
	Icon     string `json:"icon,omitempty" yaml:"icon"`
	Order    int    `json:"order,omitempty" yaml:"order"`
}

// Testimonial is a quote from a colleague or client.
type Testimonial struct {
	ID      string `json:"id" yaml:"id"`
	Author  string `json:"author" yaml:"author"`
	Role    string `json:"role,omitempty" yaml:"role"`
	Company string `json:"company,omitempty" yaml:"company"`
	Quote   string `json:"quote" yaml:"quote"`
	Avatar  string `json:"avatar,omitempty" yaml:"avatar"`
	Order   int    `json:"order,omitempty" yaml:"order"`
}

// Experience is a position held at a company.
type Experience struct {
	ID           string   `json:"id" yaml:"id"`
	Company      string   `json:"company" yaml:"company"`
	Role         string   `json:"role" yaml:"role"`
	Location     string   `json:"location,omitempty" yaml:"location"`
	Lat          *float64 `json:"lat,omitempty" yaml:"lat"`
	Lng          *float64 `json:"lng,omitempty" yaml:"lng"`
	StartDate    string   `json:"startDate,omitempty" yaml:"startDate"`
	EndDate      string   `json:"endDate,omitempty" yaml:"endDate"`
	Summary      string   `json:"summary,omitempty" yaml:"summary"`
	Highlights   []string `json:"highlights,omitempty" yaml:"highlights"`
	Technologies []string `json:"technologies,omitempty" yaml:"technologies"`
	Order        int      `json:"order,omitempty" yaml:"order"`
}

// Period renders the start and end dates as a human readable range.
func (e Experience) Period() string {
	return FormatPeriod(e.StartDate, e.EndDate)
}

// Education is a degree or course of study.
type Education struct {
	ID          string `json:"id" yaml:"id"`
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree,omitempty" yaml:"degree"`
	Field       string `json:"field,omitempty" yaml:"field"`
	StartDate   string `json:"startDate,omitempty" yaml:"startDate"`
	EndDate     string `json:"endDate,omitempty" yaml:"endDate"`
	Summary     string `json:"summary,omitempty" yaml:"summary"`
	Order       int    `json:"order,omitempty" yaml:"order"`
}

// Period renders the start and end dates as a human readable range.
func (e Education) Period() string {
	return FormatPeriod(e.StartDate, e.EndDate)
}

// Project is a portfolio piece shown in the grid and its detail modal.
type Project struct {
	ID           string   `json:"id" yaml:"id"`
	Slug         string   `json:"slug" yaml:"slug"`
	Title        string   `json:"title" yaml:"title"`
	Summary      string   `json:"summary,omitempty" yaml:"summary"`
	Body         string   `json:"body,omitempty" yaml:"body"` // markdown
	CoverImage   string   `json:"coverImage,omitempty" yaml:"coverImage"`
	Gallery      []string `json:"gallery,omitempty" yaml:"gallery"`
	Technologies []string `json:"technologies,omitempty" yaml:"technologies"`
	RepoURL      string   `json:"repoUrl,omitempty" yaml:"repoUrl"`
	LiveURL      string   `json:"liveUrl,omitempty" yaml:"liveUrl"`
	Featured     bool     `json:"featured,omitempty" yaml:"featured"`
	Year         int      `json:"year,omitempty" yaml:"year"`
	Order        int      `json:"order,omitempty" yaml:"order"`
}

// SocialLink is an outbound profile link.
type SocialLink struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// HeroSettings describes the image sequence scrubbed by the hero canvas.
type HeroSettings struct {
	FrameCount   int    `json:"frameCount,omitempty" yaml:"frameCount"`
	FramePattern string `json:"framePattern,omitempty" yaml:"framePattern"`
	Width        int    `json:"width,omitempty" yaml:"width"`
	Height       int    `json:"height,omitempty" yaml:"height"`
}

// SiteSettings is the singleton document holding site-wide copy and links.
type SiteSettings struct {
	Title       string       `json:"title,omitempty" yaml:"title"`
	Tagline     string       `json:"tagline,omitempty" yaml:"tagline"`
	Description string       `json:"description,omitempty" yaml:"description"`
	Bio         string       `json:"bio,omitempty" yaml:"bio"` // markdown
	Email       string       `json:"email,omitempty" yaml:"email"`
	Location    string       `json:"location,omitempty" yaml:"location"`
	OriginLat   *float64     `json:"originLat,omitempty" yaml:"originLat"`
	OriginLng   *float64     `json:"originLng,omitempty" yaml:"originLng"`
	Avatar      string       `json:"avatar,omitempty" yaml:"avatar"`
	ResumeURL   string       `json:"resumeUrl,omitempty" yaml:"resumeUrl"`
	Socials     []SocialLink `json:"socials,omitempty" yaml:"socials"`
	Hero        HeroSettings `json:"hero,omitempty" yaml:"hero"`
}

// DefaultSiteTitle is used when the settings document has no title.
const DefaultSiteTitle = "Portfolio"

// WithDefaults returns a copy of the settings with empty fields filled in.
func (s SiteSettings) WithDefaults() SiteSettings {
	if s.Title == "" {
		s.Title = DefaultSiteTitle
	}
	if s.Socials == nil {
		s.Socials = []SocialLink{}
	}
	return s
}

// ContentRepository is the read side of a content source. Implementations
// return empty (non-nil) slices when a collection has no documents and
// ErrNotFound for a missing project or settings document.
type ContentRepository interface {
	Skills(ctx context.Context) ([]Skill, error)
	Testimonials(ctx context.Context) ([]Testimonial, error)
	Experience(ctx context.Context) ([]Experience, error)
	Education(ctx context.Context) ([]Education, error)
	Projects(ctx context.Context) ([]Project, error)
	ProjectBySlug(ctx context.Context, slug string) (*Project, error)
	SiteSettings(ctx context.Context) (*SiteSettings, error)
}

// FormatPeriod renders "Jan 2021 – Present" style ranges from ISO dates.
// Dates may be "2006-01-02", "2006-01" or "2006"; unparseable values pass through.
func FormatPeriod(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	from := formatDate(start)
	to := "Present"
	if end != "" {
		to = formatDate(end)
	}
	if from == "" {
		return to
	}
	return fmt.Sprintf("%s – %s", from, to)
}

func formatDate(v string) string {
	if v == "" {
		return ""
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t.Format("Jan 2006")
	}
	if t, err := time.Parse("2006-01", v); err == nil {
		return t.Format("Jan 2006")
	}
	return v
}
