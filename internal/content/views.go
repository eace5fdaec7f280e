package content

import (
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/globe"
	"github.com/nfrund/folio/internal/hero"
)

// SkillGroup is one category heading in the skills section.
type SkillGroup struct {
	Category string         `json:"category"`
	Skills   []domain.Skill `json:"skills"`
}

// ProjectDetail is a project with its body rendered to sanitized HTML.
type ProjectDetail struct {
	domain.Project
	BodyHTML string `json:"bodyHtml,omitempty"`
}

// HomePage is everything the landing page renders.
type HomePage struct {
	Settings     domain.SiteSettings  `json:"settings"`
	Hero         hero.Manifest        `json:"hero"`
	Skills       []SkillGroup         `json:"skills"`
	Experience   []domain.Experience  `json:"experience"`
	Projects     []domain.Project     `json:"projects"`
	Testimonials []domain.Testimonial `json:"testimonials"`
	Globe        globe.Scene          `json:"globe"`
}

// AboutPage is the long-form biography page.
type AboutPage struct {
	Settings   domain.SiteSettings `json:"settings"`
	BioHTML    string              `json:"bioHtml,omitempty"`
	Skills     []SkillGroup        `json:"skills"`
	Experience []domain.Experience `json:"experience"`
	Education  []domain.Education  `json:"education"`
}

// ProjectsPage is the project grid.
type ProjectsPage struct {
	Settings     domain.SiteSettings `json:"settings"`
	Projects     []domain.Project    `json:"projects"`
	Technologies []string            `json:"technologies"`
}

// ProjectPage is a single project, shown as a modal or a standalone page.
type ProjectPage struct {
	Settings domain.SiteSettings `json:"settings"`
	Project  ProjectDetail       `json:"project"`
}
