// Package speech turns vocabulary terms into playable audio artifacts
// using a pluggable text-to-speech provider.
package speech

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/stvsever/LearnLanguage/internal/vocab"
)

// Failure reasons carried by SynthesisError.
const (
	ReasonUnsupportedLanguage = "unsupported language"
	ReasonUnreachable         = "unreachable"
	ReasonEmptyAudio          = "empty audio"
)

// SynthesisError describes a text-to-speech failure. The word list that
// triggered the synthesis is never affected by it.
type SynthesisError struct {
	Reason string
	Err    error
}

func (e *SynthesisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("synthesis failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("synthesis failed (%s)", e.Reason)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

// Provider defines the interface for text-to-speech providers
type Provider interface {
	// Synthesize generates audio for the text in the given language and
	// returns the resulting artifact. The caller owns the resource and
	// must Release it.
	Synthesize(ctx context.Context, text string, lang vocab.Language) (*Resource, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for speech providers
type Config struct {
	Provider     string // Provider name: "openai" or "espeak"
	TempDir      string // Directory for transient artifacts ("" = system temp)
	OutputFormat string // Output format: "mp3" or "wav"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIVoice string  // "alloy", "ash", "coral", "echo", "nova", "sage", ...
	OpenAISpeed float64 // 0.25 to 4.0
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:     "openai",
		OutputFormat: "mp3",
		OpenAIModel:  "gpt-4o-mini-tts",
		OpenAIVoice:  "alloy",
		OpenAISpeed:  0.95,
	}
}

// NewProvider creates the appropriate speech provider based on configuration
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config)

	case "espeak":
		return NewESpeakProvider(config)

	default:
		return nil, fmt.Errorf("unknown speech provider: %s", config.Provider)
	}
}

// newBreaker returns a circuit breaker tuned for TTS calls: a single
// failed request is not fatal, but repeated failures stop us from
// hammering an unreachable API.
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

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
	log      *zap.Logger
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
		log:      log,
	}
}

// Synthesize tries the primary provider first, falls back to secondary on error
func (p *ProviderWithFallback) Synthesize(ctx context.Context, text string, lang vocab.Language) (*Resource, error) {
	res, err := p.primary.Synthesize(ctx, text, lang)
	if err == nil {
		return res, nil
	}

	p.log.Warn("primary speech provider failed, falling back",
		zap.String("primary", p.primary.Name()),
		zap.String("fallback", p.fallback.Name()),
		zap.Error(err))

	return p.fallback.Synthesize(ctx, text, lang)
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
