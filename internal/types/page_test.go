package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	for _, p := range Pages() {
		parsed, err := ParsePage(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := ParsePage("settings")
	assert.Error(t, err)

	_, err = ParsePage("")
	assert.Error(t, err)
}

func TestPage_Label(t *testing.T) {
	assert.Equal(t, "Find Jobs", PageJobSearch.Label())
	assert.Equal(t, "Interview Coach", PageInterviewCoach.Label())
	assert.Equal(t, "Home", PageHome.Label())
}

func TestGroundingSource_Hostname(t *testing.T) {
	s := GroundingSource{Title: "Posting", URI: "https://www.welcometothejungle.com/fr/jobs/123"}
	assert.Equal(t, "www.welcometothejungle.com", s.Hostname())

	assert.Equal(t, "", GroundingSource{URI: "://bad"}.Hostname())
}

func TestCountUserTurns(t *testing.T) {
	history := []Turn{
		{Speaker: SpeakerAI, Text: "Q1"},
		{Speaker: SpeakerUser, Text: "A1"},
		{Speaker: SpeakerAI, Text: "Q2"},
		{Speaker: SpeakerUser, Text: "A2"},
	}
	assert.Equal(t, 2, CountUserTurns(history))
	assert.Equal(t, 0, CountUserTurns(nil))
}
