package vocab

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// OpenAIGenerator implements Generator using the OpenAI chat completion API.
type OpenAIGenerator struct {
	client  *openai.Client
	config  *Config
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAIGenerator creates a new OpenAI-backed generator
func NewOpenAIGenerator(config *Config) *OpenAIGenerator {
	return &OpenAIGenerator{
		client:  openai.NewClient(config.OpenAIKey),
		config:  config,
		breaker: newBreaker("openai-generation"),
	}
}

// Generate requests a vocabulary list and parses the response
func (g *OpenAIGenerator) Generate(ctx context.Context, params Params) (WordList, error) {
	if err := params.Validate(); err != nil {
		return nil, &GenerationError{Reason: ReasonInvalidParams, Err: err}
	}

	req := openai.ChatCompletionRequest{
		Model: g.config.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(params),
			},
		},
		Temperature: 0.4,
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		resp, err := g.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", nil
		}
		return resp.Choices[0].Message.Content, nil
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
func (g *OpenAIGenerator) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is configured
func (g *OpenAIGenerator) IsAvailable() error {
	if g.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}
