package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/careerbridge/internal/types"
)

func TestResolve_IncompleteProfileRedirects(t *testing.T) {
	incomplete := []types.UserProfile{
		types.DefaultProfile(),
		{Name: ""},
		{Name: "   "},
		{Field: "Data Science", VisaType: "EU Blue Card"}, // everything but the name
	}

	for _, profile := range incomplete {
		for _, requested := range types.Pages() {
			resolved := Resolve(requested, profile)
			switch requested {
			case types.PageHome, types.PageProfile:
				assert.Equal(t, requested, resolved, "home and profile are always reachable")
			default:
				assert.Equal(t, types.PageProfile, resolved, "page %s must redirect to profile", requested)
			}
		}
	}
}

func TestResolve_CompleteProfilePassesThrough(t *testing.T) {
	profile := types.UserProfile{Name: "Sarah Chen"}
	for _, requested := range types.Pages() {
		assert.Equal(t, requested, Resolve(requested, profile))
	}
}

func TestResolve_IsPure(t *testing.T) {
	profile := types.UserProfile{Name: "Sarah"}
	first := Resolve(types.PageJobSearch, profile)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Resolve(types.PageJobSearch, profile))
	}
}

func TestNavItems(t *testing.T) {
	items := NavItems(types.DefaultProfile())
	assert.Len(t, items, 6)

	locked := map[types.Page]bool{}
	for _, item := range items {
		locked[item.Page] = item.Locked
	}
	assert.False(t, locked[types.PageHome])
	assert.False(t, locked[types.PageProfile])
	assert.True(t, locked[types.PageDashboard])
	assert.True(t, locked[types.PageJobSearch])
	assert.True(t, locked[types.PageCVTailor])
	assert.True(t, locked[types.PageInterviewCoach])

	for _, item := range NavItems(types.UserProfile{Name: "Sarah"}) {
		assert.False(t, item.Locked)
	}
}
