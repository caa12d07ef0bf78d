package vocab

import (
	"context"
	"fmt"
	"strings"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"
)

// GeminiGenerator implements Generator using the Google Gemini API.
type GeminiGenerator struct {
	client  *genai.Client
	config  *Config
	breaker *gobreaker.CircuitBreaker
}

// NewGeminiGenerator creates a new Gemini-backed generator
func NewGeminiGenerator(ctx context.Context, config *Config) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client:  client,
		config:  config,
		breaker: newBreaker("gemini-generation"),
	}, nil
}

// Generate requests a vocabulary list and parses the response
func (g *GeminiGenerator) Generate(ctx context.Context, params Params) (WordList, error) {
	if err := params.Validate(); err != nil {
		return nil, &GenerationError{Reason: ReasonInvalidParams, Err: err}
	}

	prompt := systemPrompt + "\n\n" + BuildPrompt(params)

	result, err := g.breaker.Execute(func() (interface{}, error) {
		resp, err := g.client.Models.GenerateContent(ctx, g.config.GeminiModel, genai.Text(prompt), nil)
		if err != nil {
			return nil, fmt.Errorf("Gemini API error: %w", err)
		}
		return resp.Text(), nil
	})
	if err != nil {
		return nil, &GenerationError{Reason: ReasonUnreachable, Err: err}
	}

	text := strings.TrimSpace(result.(string))
	if text == "" {
		return nil, &GenerationError{Reason: ReasonEmpty}
	}

	return ParseResponse(text, params.ItemCount)
}

// Name returns the provider name
func (g *GeminiGenerator) Name() string {
	return "gemini"
}

// IsAvailable checks if the Gemini API is configured
func (g *GeminiGenerator) IsAvailable() error {
	if g.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
