package gateway

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jonathan/careerbridge/internal/prompts"
	"github.com/jonathan/careerbridge/internal/types"
)

const promptFile = "careerbridge.json"

// Fixed fallback strings used when the provider returns empty content.
const (
	fallbackSearchText  = "No current postings found. Please refine your search keywords."
	fallbackSourceTitle = "Job Posting / Recruiter Link"
	fallbackCoverLetter = "Unable to generate cover letter."
	fallbackQuestion    = "Please describe your professional experience in France."
)

// Gateway exposes the typed model operations used by the page controllers.
// Construct once at startup and pass by reference; substitute a fake Client
// in tests.
type Gateway struct {
	client Client
}

// New creates a Gateway on top of a provider client.
func New(client Client) *Gateway {
	return &Gateway{client: client}
}

// MatchJobs runs a web-grounded job search for the profile and returns the
// report plus its grounding sources. Provider errors propagate untouched;
// there are no retries.
func (g *Gateway) MatchJobs(ctx context.Context, profile types.UserProfile) (types.SearchResult, error) {
	prompt := prompts.Format(prompts.MustGet(promptFile, "job_search"), map[string]string{
		"Field":         profile.Field,
		"Skills":        strings.Join(profile.Skills, ", "),
		"VisaType":      profile.VisaType,
		"LanguageLevel": profile.LanguageLevel,
		"Preferences":   profile.Preferences,
	})

	grounded, err := g.client.GenerateGrounded(ctx, prompt, TierFlash)
	if err != nil {
		return types.SearchResult{}, err
	}

	text := grounded.Text
	if strings.TrimSpace(text) == "" {
		text = fallbackSearchText
	}

	sources := make([]types.GroundingSource, 0, len(grounded.Chunks))
	for _, chunk := range grounded.Chunks {
		if chunk.URI == "" {
			continue
		}
		title := chunk.Title
		if title == "" {
			title = fallbackSourceTitle
		}
		sources = append(sources, types.GroundingSource{Title: title, URI: chunk.URI})
	}

	return types.SearchResult{Text: text, Sources: sources}, nil
}

// AnalyzeCV reviews CV text against French market standards and returns a
// structured analysis. jobDescription is optional context and may be empty.
// A payload that fails to parse against the expected schema yields
// *ErrCVAnalysisFailed rather than partial data.
func (g *Gateway) AnalyzeCV(ctx context.Context, cvText, jobDescription string) (types.CVAnalysis, error) {
	jobContext := ""
	if jobDescription != "" {
		jobContext = "Context: Applying for " + jobDescription
	}
	prompt := prompts.Format(prompts.MustGet(promptFile, "analyze_cv"), map[string]string{
		"JobContext": jobContext,
		"CV":         cvText,
	})

	raw, err := g.client.GenerateJSON(ctx, prompt, cvAnalysisSchema(), TierPro)
	if err != nil {
		return types.CVAnalysis{}, err
	}

	if err := validateAgainstSchema(cvAnalysisSchemaFile, raw); err != nil {
		return types.CVAnalysis{}, &ErrCVAnalysisFailed{Cause: err}
	}
	var analysis types.CVAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return types.CVAnalysis{}, &ErrCVAnalysisFailed{Cause: err}
	}
	return analysis, nil
}

// GenerateCoverLetter produces a tailored "Lettre de Motivation". Empty
// provider content yields a fixed fallback string, never an error.
func (g *Gateway) GenerateCoverLetter(ctx context.Context, cvText string, analysis types.CVAnalysis, jobDescription string) (string, error) {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(prompts.MustGet(promptFile, "cover_letter"), map[string]string{
		"CV":             cvText,
		"Analysis":       string(analysisJSON),
		"JobDescription": jobDescription,
		"Score":          strconv.Itoa(analysis.FormattingScore),
	})

	text, err := g.client.GenerateContent(ctx, prompt, TierPro)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return fallbackCoverLetter, nil
	}
	return text, nil
}

// NextQuestion asks the coach for the next interview question. Stateless per
// call: the full prior transcript is passed in as context every time.
func (g *Gateway) NextQuestion(ctx context.Context, profile types.UserProfile, history []types.Turn) (string, error) {
	if history == nil {
		history = []types.Turn{}
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", err
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(prompts.MustGet(promptFile, "interview_question"), map[string]string{
		"Field":    profile.Field,
		"Profile":  string(profileJSON),
		"History":  string(historyJSON),
		"VisaType": profile.VisaType,
	})

	text, err := g.client.GenerateContent(ctx, prompt, TierFlash)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return fallbackQuestion, nil
	}
	return text, nil
}

// Feedback reviews a completed transcript. A payload that fails to parse
// against the expected schema is absorbed into (nil, nil): feedback is
// unavailable, not a hard error.
func (g *Gateway) Feedback(ctx context.Context, history []types.Turn) (*types.InterviewFeedback, error) {
	if history == nil {
		history = []types.Turn{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(prompts.MustGet(promptFile, "interview_feedback"), map[string]string{
		"History": string(historyJSON),
	})

	raw, err := g.client.GenerateJSON(ctx, prompt, interviewFeedbackSchema(), TierFlash)
	if err != nil {
		return nil, err
	}

	if err := validateAgainstSchema(interviewFeedbackSchemaFile, raw); err != nil {
		return nil, nil
	}
	var feedback types.InterviewFeedback
	if err := json.Unmarshal([]byte(raw), &feedback); err != nil {
		return nil, nil
	}
	return &feedback, nil
}
