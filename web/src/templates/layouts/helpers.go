package layouts

import "github.com/nfrund/folio/internal/domain"

// CalculateTitle builds the document title from the page title and the site title.
func CalculateTitle(title, siteTitle string) string {
	if siteTitle == "" {
		siteTitle = domain.DefaultSiteTitle
	}
	if title != "" && title != siteTitle {
		return title + " - " + siteTitle
	}
	return siteTitle
}

// navLink is one entry of the main navigation.
type navLink struct {
	Label string
	Path  string
}

var mainNav = []navLink{
	{Label: "Home", Path: "/"},
	{Label: "About", Path: "/about"},
	{Label: "Projects", Path: "/projects"},
	{Label: "Contact", Path: "/contact"},
}

// isActive reports whether path belongs to the nav entry at navPath.
func isActive(navPath, path string) bool {
	if navPath == "/" {
		return path == "/"
	}
	return path == navPath || len(path) > len(navPath) && path[:len(navPath)+1] == navPath+"/"
}
