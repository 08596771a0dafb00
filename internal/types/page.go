package types

import "fmt"

// Page is the closed set of navigable pages. It is a pure navigation token;
// nothing about a page is persisted.
type Page string

// Page constants mirror the SPA's route tokens.
const (
	PageHome           Page = "home"
	PageDashboard      Page = "dashboard"
	PageJobSearch      Page = "jobs"
	PageCVTailor       Page = "cv"
	PageInterviewCoach Page = "interview"
	PageProfile        Page = "profile"
)

// Pages lists every page in navbar order.
func Pages() []Page {
	return []Page{PageHome, PageDashboard, PageJobSearch, PageCVTailor, PageInterviewCoach, PageProfile}
}

// ParsePage converts a route token into a Page.
// Unknown tokens are rejected rather than defaulted.
func ParsePage(s string) (Page, error) {
	switch Page(s) {
	case PageHome, PageDashboard, PageJobSearch, PageCVTailor, PageInterviewCoach, PageProfile:
		return Page(s), nil
	default:
		return "", fmt.Errorf("unknown page %q", s)
	}
}

// Label returns the navbar label for the page.
func (p Page) Label() string {
	switch p {
	case PageHome:
		return "Home"
	case PageDashboard:
		return "Dashboard"
	case PageJobSearch:
		return "Find Jobs"
	case PageCVTailor:
		return "CV Tailor"
	case PageInterviewCoach:
		return "Interview Coach"
	case PageProfile:
		return "Profile"
	}
	return string(p)
}
