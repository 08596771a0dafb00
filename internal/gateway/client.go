// Package gateway is the sole boundary to the external model provider.
//
// It exposes one typed operation per feature (job match, CV analysis, cover
// letter, interview question, interview feedback) and normalizes provider
// responses into the shared types. Every call is stateless: the full
// conversational context is supplied by the caller on each invocation, so the
// integration holds no session state. No automatic retries.
package gateway

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// ModelTier selects the capability level for a provider call.
type ModelTier string

const (
	// TierFlash is for fast tasks: grounded search, interview turns.
	TierFlash ModelTier = "flash"
	// TierPro is for deeper reasoning: CV analysis, cover letters.
	TierPro ModelTier = "pro"
)

// Config maps model tiers to provider model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierFlash: "gemini-3-flash-preview",
			TierPro:   "gemini-3-pro-preview",
		},
	}
}

// GetModel returns the model name for a tier, falling back to the flash tier.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierFlash]
}

// WebChunk is one web grounding citation from response metadata.
type WebChunk struct {
	Title string
	URI   string
}

// GroundedContent is the raw outcome of a web-grounded generation.
type GroundedContent struct {
	Text   string
	Chunks []WebChunk
}

// Client is an abstraction over the LLM provider. The Gateway depends on this
// interface so tests can substitute a fake without network access.
type Client interface {
	// GenerateContent generates free text.
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateGrounded generates text with the provider's web-search tool
	// enabled and returns any grounding citations alongside the text.
	GenerateGrounded(ctx context.Context, prompt string, tier ModelTier) (GroundedContent, error)
	// GenerateJSON generates content constrained to the given response schema
	// and returns the raw JSON payload.
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema, tier ModelTier) (string, error)
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, config: config}, nil
}

// GenerateContent generates free text using the specified model tier.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.config.GetModel(tier), genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.2),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return resp.Text(), nil
}

// GenerateGrounded generates text with Google Search grounding enabled.
func (c *GeminiClient) GenerateGrounded(ctx context.Context, prompt string, tier ModelTier) (GroundedContent, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.config.GetModel(tier), genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	})
	if err != nil {
		return GroundedContent{}, fmt.Errorf("failed to generate grounded content: %w", err)
	}

	out := GroundedContent{Text: resp.Text()}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil {
				continue
			}
			out.Chunks = append(out.Chunks, WebChunk{Title: chunk.Web.Title, URI: chunk.Web.URI})
		}
	}
	return out, nil
}

// GenerateJSON generates schema-constrained JSON using the specified model tier.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema, tier ModelTier) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.config.GetModel(tier), genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.1),
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	// Clean any markdown code block wrappers
	return CleanJSONBlock(resp.Text()), nil
}
