package gateway

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// Embedded JSON Schema filenames used to validate structured provider payloads.
const (
	cvAnalysisSchemaFile        = "schemas/cv_analysis.schema.json"
	interviewFeedbackSchemaFile = "schemas/interview_feedback.schema.json"
)

// cvAnalysisSchema is the provider-side response schema for analyzeCV.
func cvAnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"formattingScore":    {Type: genai.TypeInteger},
			"contentSuggestions": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"culturalTips":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"reformattedCV":      {Type: genai.TypeString},
		},
		Required: []string{"formattingScore", "contentSuggestions", "culturalTips", "reformattedCV"},
	}
}

// interviewFeedbackSchema is the provider-side response schema for feedback.
func interviewFeedbackSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"strengths":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"weaknesses":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"culturalNuance": {Type: genai.TypeString},
		},
		Required: []string{"strengths", "weaknesses", "culturalNuance"},
	}
}

// validateAgainstSchema validates a raw JSON payload against an embedded
// JSON Schema file. Providers occasionally ignore the response schema, so the
// payload is re-checked locally before it is decoded into typed data.
func validateAgainstSchema(schemaFile, payload string) error {
	schemaData, err := schemaFiles.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read schema %s: %w", schemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewStringLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if !result.Valid() {
		var sb strings.Builder
		sb.WriteString("payload does not match schema:")
		for _, desc := range result.Errors() {
			sb.WriteString(fmt.Sprintf(" %s: %s;", desc.Field(), desc.Description()))
		}
		return fmt.Errorf("%s", sb.String())
	}
	return nil
}
