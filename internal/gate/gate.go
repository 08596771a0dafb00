// Package gate decides which page actually renders for a navigation request.
//
// The gate is the profile-completion guard: feature pages are unreachable
// until the profile carries a name, so the shell redirects those requests to
// the Profile page. Resolve is pure so the policy is independently testable.
package gate

import "github.com/jonathan/careerbridge/internal/types"

// Resolve maps a requested page to the page that renders.
//
// Home and Profile are always reachable. Every other page requires a complete
// profile; incomplete profiles are redirected to Profile.
func Resolve(requested types.Page, profile types.UserProfile) types.Page {
	if requested == types.PageHome || requested == types.PageProfile {
		return requested
	}
	if !profile.Complete() {
		return types.PageProfile
	}
	return requested
}

// NavItem is one navbar entry with its gating state.
type NavItem struct {
	Page   types.Page `json:"page"`
	Label  string     `json:"label"`
	Locked bool       `json:"locked"`
}

// NavItems returns the navbar entries for the given profile. Locked entries
// would be redirected to Profile if requested.
func NavItems(profile types.UserProfile) []NavItem {
	items := make([]NavItem, 0, len(types.Pages()))
	for _, p := range types.Pages() {
		items = append(items, NavItem{
			Page:   p,
			Label:  p.Label(),
			Locked: Resolve(p, profile) != p,
		})
	}
	return items
}
