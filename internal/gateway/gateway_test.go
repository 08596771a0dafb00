package gateway

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/jonathan/careerbridge/internal/types"
)

// fakeClient is a canned-response Client for testing the gateway contracts
// without network access.
type fakeClient struct {
	textResponse     string
	textErr          error
	groundedResponse GroundedContent
	groundedErr      error
	jsonResponse     string
	jsonErr          error

	lastPrompt string
	lastTier   ModelTier
	lastSchema *genai.Schema
	jsonCalls  int
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier ModelTier) (string, error) {
	f.lastPrompt = prompt
	f.lastTier = tier
	return f.textResponse, f.textErr
}

func (f *fakeClient) GenerateGrounded(_ context.Context, prompt string, tier ModelTier) (GroundedContent, error) {
	f.lastPrompt = prompt
	f.lastTier = tier
	return f.groundedResponse, f.groundedErr
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, schema *genai.Schema, tier ModelTier) (string, error) {
	f.lastPrompt = prompt
	f.lastTier = tier
	f.lastSchema = schema
	f.jsonCalls++
	return f.jsonResponse, f.jsonErr
}

func testProfile() types.UserProfile {
	return types.UserProfile{
		Name:          "Sarah Chen",
		Field:         "Software Engineering",
		Skills:        []string{"React", "TypeScript"},
		VisaType:      "VLS-TS Student",
		LanguageLevel: "B2",
		Preferences:   "Paris internships",
	}
}

func TestMatchJobs_ExtractsSources(t *testing.T) {
	fake := &fakeClient{
		groundedResponse: GroundedContent{
			Text: "**Frontend Developer** at Acme, Paris",
			Chunks: []WebChunk{
				{Title: "Acme careers", URI: "https://acme.example/jobs/1"},
				{Title: "", URI: "https://linkedin.example/post/2"},
				{Title: "No link", URI: ""},
			},
		},
	}
	g := New(fake)

	result, err := g.MatchJobs(context.Background(), testProfile())
	require.NoError(t, err)

	assert.Equal(t, "**Frontend Developer** at Acme, Paris", result.Text)
	require.Len(t, result.Sources, 2, "chunks without a URI are dropped")
	assert.Equal(t, "Acme careers", result.Sources[0].Title)
	assert.Equal(t, fallbackSourceTitle, result.Sources[1].Title, "missing titles get the placeholder")

	assert.Equal(t, TierFlash, fake.lastTier)
	assert.Contains(t, fake.lastPrompt, "Software Engineering")
	assert.Contains(t, fake.lastPrompt, "React, TypeScript")
	assert.Contains(t, fake.lastPrompt, "VLS-TS Student")
}

func TestMatchJobs_EmptyContentFallback(t *testing.T) {
	g := New(&fakeClient{groundedResponse: GroundedContent{Text: "  "}})

	result, err := g.MatchJobs(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, fallbackSearchText, result.Text)
	assert.Empty(t, result.Sources)
	assert.NotNil(t, result.Sources, "zero sources renders as an empty list, not null")
}

func TestMatchJobs_ProviderErrorPropagates(t *testing.T) {
	providerErr := errors.New("provider: 503")
	g := New(&fakeClient{groundedErr: providerErr})

	_, err := g.MatchJobs(context.Background(), testProfile())
	assert.ErrorIs(t, err, providerErr)
}

func TestAnalyzeCV_HappyPath(t *testing.T) {
	fake := &fakeClient{
		jsonResponse: `{"formattingScore": 82, "contentSuggestions": ["Add quantified achievements"], "culturalTips": ["Use formal vous tone"], "reformattedCV": "# Jane Doe\n..."}`,
	}
	g := New(fake)

	analysis, err := g.AnalyzeCV(context.Background(), "Jane Doe, 3 years React experience", "")
	require.NoError(t, err)

	assert.Equal(t, 82, analysis.FormattingScore)
	assert.Equal(t, []string{"Add quantified achievements"}, analysis.ContentSuggestions)
	assert.Equal(t, []string{"Use formal vous tone"}, analysis.CulturalTips)
	assert.Equal(t, "# Jane Doe\n...", analysis.ReformattedCV)

	assert.Equal(t, TierPro, fake.lastTier)
	require.NotNil(t, fake.lastSchema)
	assert.Contains(t, fake.lastSchema.Required, "formattingScore")
	assert.NotContains(t, fake.lastPrompt, "Context: Applying for", "no job context when none given")
}

func TestAnalyzeCV_OptionalJobDescription(t *testing.T) {
	fake := &fakeClient{
		jsonResponse: `{"formattingScore": 70, "contentSuggestions": [], "culturalTips": [], "reformattedCV": ""}`,
	}
	g := New(fake)

	_, err := g.AnalyzeCV(context.Background(), "cv", "Data Engineer at Acme")
	require.NoError(t, err)
	assert.Contains(t, fake.lastPrompt, "Context: Applying for Data Engineer at Acme")
}

func TestAnalyzeCV_MalformedPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "the model had a bad day"},
		{"missing required field", `{"formattingScore": 82, "contentSuggestions": []}`},
		{"wrong type", `{"formattingScore": "high", "contentSuggestions": [], "culturalTips": [], "reformattedCV": ""}`},
		{"fractional score", `{"formattingScore": 82.5, "contentSuggestions": [], "culturalTips": [], "reformattedCV": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&fakeClient{jsonResponse: tt.payload})
			_, err := g.AnalyzeCV(context.Background(), "cv text", "")

			var analysisErr *ErrCVAnalysisFailed
			require.Error(t, err)
			assert.True(t, errors.As(err, &analysisErr), "expected ErrCVAnalysisFailed, got %v", err)
		})
	}
}

func TestAnalyzeCV_ProviderErrorIsNotAnalysisFailure(t *testing.T) {
	providerErr := errors.New("provider: timeout")
	g := New(&fakeClient{jsonErr: providerErr})

	_, err := g.AnalyzeCV(context.Background(), "cv text", "")
	assert.ErrorIs(t, err, providerErr)

	var analysisErr *ErrCVAnalysisFailed
	assert.False(t, errors.As(err, &analysisErr))
}

func TestGenerateCoverLetter(t *testing.T) {
	fake := &fakeClient{textResponse: "Madame, Monsieur,\n..."}
	g := New(fake)

	analysis := types.CVAnalysis{FormattingScore: 82}
	letter, err := g.GenerateCoverLetter(context.Background(), "cv", analysis, "Data Engineer")
	require.NoError(t, err)
	assert.Equal(t, "Madame, Monsieur,\n...", letter)
	assert.Contains(t, fake.lastPrompt, "82% match conditions")
	assert.Contains(t, fake.lastPrompt, "Data Engineer")
	assert.Equal(t, TierPro, fake.lastTier)
}

func TestGenerateCoverLetter_EmptyContentFallback(t *testing.T) {
	g := New(&fakeClient{textResponse: ""})

	letter, err := g.GenerateCoverLetter(context.Background(), "cv", types.CVAnalysis{}, "job")
	require.NoError(t, err, "empty content never fails a cover letter")
	assert.Equal(t, fallbackCoverLetter, letter)
}

func TestNextQuestion(t *testing.T) {
	fake := &fakeClient{textResponse: "Tell me about a conflict you resolved."}
	g := New(fake)

	history := []types.Turn{
		{Speaker: types.SpeakerAI, Text: "Q1"},
		{Speaker: types.SpeakerUser, Text: "A1"},
	}
	question, err := g.NextQuestion(context.Background(), testProfile(), history)
	require.NoError(t, err)
	assert.Equal(t, "Tell me about a conflict you resolved.", question)

	assert.Contains(t, fake.lastPrompt, "VLS-TS Student", "prompt must address visa status")
	assert.Contains(t, fake.lastPrompt, `"speaker":"User"`, "full transcript passed each call")
	assert.Equal(t, TierFlash, fake.lastTier)
}

func TestNextQuestion_EmptyHistoryAndFallback(t *testing.T) {
	fake := &fakeClient{textResponse: "\n"}
	g := New(fake)

	question, err := g.NextQuestion(context.Background(), testProfile(), nil)
	require.NoError(t, err)
	assert.Equal(t, fallbackQuestion, question)
	assert.Contains(t, fake.lastPrompt, "History: []", "nil history serializes as an empty list")
}

func TestFeedback_HappyPath(t *testing.T) {
	fake := &fakeClient{
		jsonResponse: `{"strengths": ["clear"], "weaknesses": ["short answers"], "culturalNuance": "Use vous."}`,
	}
	g := New(fake)

	feedback, err := g.Feedback(context.Background(), []types.Turn{{Speaker: types.SpeakerUser, Text: "A1"}})
	require.NoError(t, err)
	require.NotNil(t, feedback)
	assert.Equal(t, []string{"clear"}, feedback.Strengths)
	assert.Equal(t, "Use vous.", feedback.CulturalNuance)
}

func TestFeedback_MalformedPayloadIsAbsorbed(t *testing.T) {
	g := New(&fakeClient{jsonResponse: "not json at all"})

	feedback, err := g.Feedback(context.Background(), nil)
	require.NoError(t, err, "parse failure means feedback unavailable, not an error")
	assert.Nil(t, feedback)
}

func TestFeedback_ProviderErrorPropagates(t *testing.T) {
	providerErr := errors.New("provider: 500")
	g := New(&fakeClient{jsonErr: providerErr})

	_, err := g.Feedback(context.Background(), nil)
	assert.ErrorIs(t, err, providerErr)
}

func TestGatewayCallsAreStateless(t *testing.T) {
	fake := &fakeClient{jsonResponse: `{"strengths": [], "weaknesses": [], "culturalNuance": ""}`}
	g := New(fake)

	history := []types.Turn{{Speaker: types.SpeakerUser, Text: "same input"}}
	first, err := g.Feedback(context.Background(), history)
	require.NoError(t, err)
	prompt := fake.lastPrompt

	second, err := g.Feedback(context.Background(), history)
	require.NoError(t, err)

	assert.Equal(t, prompt, fake.lastPrompt, "same inputs build the same request")
	assert.Equal(t, first, second)
	assert.Equal(t, 2, fake.jsonCalls, "no caching, no retries: one call per invocation")
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain json", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"whitespace", "  {\"a\": 1}  ", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestEmbeddedSchemas_AreValid(t *testing.T) {
	for _, file := range []string{cvAnalysisSchemaFile, interviewFeedbackSchemaFile} {
		t.Run(file, func(t *testing.T) {
			data, err := schemaFiles.ReadFile(file)
			require.NoError(t, err)
			assert.True(t, strings.Contains(string(data), `"required"`))

			// A trivially valid payload exercises the loader end to end
			err = validateAgainstSchema(file, `{}`)
			assert.Error(t, err, "empty object must fail required-field checks")
		})
	}
}
