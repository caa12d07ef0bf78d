package vocab

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// Failure reasons carried by GenerationError.
const (
	ReasonUnreachable   = "unreachable"   // service could not be reached or returned an error status
	ReasonEmpty         = "empty"         // service returned no usable text
	ReasonIncomplete    = "incomplete"    // fewer valid entries than requested
	ReasonInvalidParams = "invalid parameters"
)

// GenerationError is returned for any language-service failure, including
// responses that cannot be parsed into the requested number of entries.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("generation failed (%s)", e.Reason)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Generator defines the interface for language-generation providers
type Generator interface {
	// Generate produces a word list for the given parameters. A single call
	// makes at most one upstream attempt; there are no retries.
	Generate(ctx context.Context, params Params) (WordList, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for generation providers
type Config struct {
	Provider string // Provider name: "openai" or "gemini"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string // e.g. "gpt-4o-mini" or "gpt-4o"

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string // e.g. "gemini-2.0-flash"
}

// DefaultConfig returns default generation configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}

// NewGenerator creates the appropriate generation provider based on configuration
func NewGenerator(ctx context.Context, config *Config) (Generator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIGenerator(config), nil

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiGenerator(ctx, config)

	default:
		return nil, fmt.Errorf("unknown generation provider: %s", config.Provider)
	}
}

// newBreaker builds the circuit breaker shared by the generation providers.
// The breaker never retries; it only fails fast once the service is known
// to be down.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
}
