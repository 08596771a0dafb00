package server

import (
	"net/http"

	"github.com/jonathan/careerbridge/internal/gate"
	"github.com/jonathan/careerbridge/internal/search"
	"github.com/jonathan/careerbridge/internal/tailor"
	"github.com/jonathan/careerbridge/internal/types"
)

// pageResponse is the envelope for every page request: which page was asked
// for, which one the gate resolved it to, the navbar, and the page payload.
type pageResponse struct {
	Requested types.Page     `json:"requested"`
	Resolved  types.Page     `json:"resolved"`
	Nav       []gate.NavItem `json:"nav"`
	Page      any            `json:"page"`
}

type featureCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type homePage struct {
	Headline string        `json:"headline"`
	Tagline  string        `json:"tagline"`
	Features []featureCard `json:"features"`
}

type checklistItem struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

type roadmapItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

type statCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

type dashboardPage struct {
	Greeting  string          `json:"greeting"`
	Subtitle  string          `json:"subtitle"`
	VisaType  string          `json:"visaType"`
	Stats     []statCard      `json:"stats"`
	Roadmap   []roadmapItem   `json:"roadmap"`
	Checklist []checklistItem `json:"checklist"`
}

type jobsPage struct {
	search.Snapshot
	Searched bool     `json:"searched"`
	Fields   []string `json:"fields"`
}

type cvPage struct {
	tailor.Snapshot
	HasSavedAnalysis bool `json:"hasSavedAnalysis"`
}

type profilePage struct {
	Profile        types.UserProfile     `json:"profile"`
	Fields         []string              `json:"fields"`
	VisaTypes      []string              `json:"visaTypes"`
	LanguageLevels []types.LanguageLevel `json:"languageLevels"`
}

// handleGetPage resolves a navigation request through the gate and returns
// the payload of the page that actually renders.
func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	requested, err := types.ParsePage(r.PathValue("page"))
	if err != nil {
		s.handleError(w, &ErrNotFound{Resource: "page"})
		return
	}

	profile := s.currentProfile()
	resolved := gate.Resolve(requested, profile)

	var payload any
	switch resolved {
	case types.PageHome:
		payload = s.homePayload()
	case types.PageDashboard:
		payload = s.dashboardPayload(r, profile)
	case types.PageJobSearch:
		snap := s.search.Snapshot()
		payload = jobsPage{
			Snapshot: snap,
			Searched: snap.Result != nil || snap.InFlight,
			Fields:   types.Fields,
		}
	case types.PageCVTailor:
		saved, err := s.store.LoadAnalysis(r.Context())
		if err != nil {
			s.handleError(w, &ErrStorage{Cause: err})
			return
		}
		payload = cvPage{Snapshot: s.tailor.Snapshot(), HasSavedAnalysis: saved != nil}
	case types.PageInterviewCoach:
		payload = s.interview.Snapshot()
	case types.PageProfile:
		payload = profilePage{
			Profile:        profile,
			Fields:         types.Fields,
			VisaTypes:      types.VisaTypes,
			LanguageLevels: types.LanguageLevels,
		}
	}

	s.jsonResponse(w, http.StatusOK, pageResponse{
		Requested: requested,
		Resolved:  resolved,
		Nav:       gate.NavItems(profile),
		Page:      payload,
	})
}

func (s *Server) homePayload() homePage {
	return homePage{
		Headline: "Unlock your career strategy in France.",
		Tagline:  "Tailored support for international students. We help you navigate the French job market with confidence and clarity.",
		Features: []featureCard{
			{
				Title:       "Smart Job Matching",
				Description: "Our AI filters thousands of French listings to find those truly open to international talent and specific visa types.",
			},
			{
				Title:       "CV & Cover Letter Tailoring",
				Description: "Instantly reformat your profile to match French recruitment standards and generate tailored motivation letters.",
			},
			{
				Title:       "AI Interview Coach",
				Description: "Practice with a specialized AI coach that understands the cultural nuances of French workplace etiquette.",
			},
		},
	}
}

func (s *Server) dashboardPayload(r *http.Request, profile types.UserProfile) dashboardPage {
	saved, err := s.store.LoadAnalysis(r.Context())
	if err != nil {
		// The checklist degrades rather than failing the whole page.
		saved = nil
	}

	s.mu.RLock()
	interviewDone := s.interviewDone
	s.mu.RUnlock()

	return dashboardPage{
		Greeting: "Welcome back, " + profile.FirstName() + "!",
		Subtitle: "Here's the latest update for your " + profile.Field + " search.",
		VisaType: profile.VisaType,
		Stats: []statCard{
			{Label: "Applications", Value: "12", Change: "+2 this week"},
			{Label: "Interviews", Value: "3", Change: "Next tomorrow"},
			{Label: "AI Matches", Value: "45", Change: "15 new today"},
		},
		Roadmap: []roadmapItem{
			{
				Title:       "Polish CV for French Luxury sector",
				Description: "French luxury recruiters value precise formatting and bilingual nuances. Let's optimize yours.",
				Action:      "Optimize CV",
			},
			{
				Title:       "HEC Alumni Tech Mixer",
				Description: "Exclusive networking for international graduates. Station F, Paris. Friday at 18:00.",
				Action:      "RSVP Event",
			},
			{
				Title:       "Visa Rule Update (Oct 2024)",
				Description: "Clarification on APS extension timelines for non-EU Master graduates.",
				Action:      "Check Guide",
			},
		},
		Checklist: []checklistItem{
			{Label: "CV Optimized", Done: saved != nil},
			{Label: "Preferences Set", Done: profile.Preferences != ""},
			{Label: "First Mock Interview", Done: interviewDone},
			{Label: "Sync Tracker", Done: false},
		},
	}
}
