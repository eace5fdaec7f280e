package pages

import (
	cmp "maragu.dev/gomponents"

	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/web/src/templates/components"
	"github.com/nfrund/folio/web/src/templates/layouts"
)

// Projects is the full project grid.
func Projects(base layouts.BaseProps, page *content.ProjectsPage) cmp.Node {
	base.Settings = page.Settings
	base.Title = "Projects"

	return layouts.Base(base,
		components.Section("projects", "Projects",
			components.TechnologyFilter(page.Technologies),
			components.ProjectGrid(page.Projects),
		),
	)
}

// Project is a project detail rendered as a standalone page, used for direct
// links and when JavaScript is unavailable.
func Project(base layouts.BaseProps, page *content.ProjectPage) cmp.Node {
	base.Settings = page.Settings
	base.Title = page.Project.Title
	base.Description = page.Project.Summary

	return layouts.Base(base,
		components.Section("project", "", components.ProjectDetail(page.Project)),
	)
}

// ProjectFragment is the htmx response for a project card click.
func ProjectFragment(page *content.ProjectPage) cmp.Node {
	return components.ProjectModal(page.Project)
}
