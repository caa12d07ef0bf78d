package speech

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"github.com/stvsever/LearnLanguage/internal/vocab"
)

// OpenAIProvider implements Provider for the OpenAI TTS API
type OpenAIProvider struct {
	client  *openai.Client
	config  *Config
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAIProvider creates a new OpenAI TTS provider
func NewOpenAIProvider(config *Config) (Provider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAIProvider{
		client:  openai.NewClient(config.OpenAIKey),
		config:  config,
		breaker: newBreaker("openai-tts"),
	}, nil
}

// Synthesize generates audio for the text using OpenAI TTS
func (p *OpenAIProvider) Synthesize(ctx context.Context, text string, lang vocab.Language) (*Resource, error) {
	if !lang.Valid() {
		return nil, &SynthesisError{
			Reason: ReasonUnsupportedLanguage,
			Err:    fmt.Errorf("language %q", lang),
		}
	}
	input := preprocessText(text)
	if input == "" {
		return nil, &SynthesisError{
			Reason: ReasonEmptyAudio,
			Err:    fmt.Errorf("nothing to speak"),
		}
	}

	req := openai.CreateSpeechRequest{
		Model: openai.SpeechModel(p.config.OpenAIModel),
		Input: input,
		Voice: openai.SpeechVoice(p.config.OpenAIVoice),
		Speed: p.config.OpenAISpeed,
	}

	// Voice instructions are only honored by the gpt-4o-mini-tts model
	if p.config.OpenAIModel == "gpt-4o-mini-tts" {
		req.Instructions = languageInstruction(lang)
	}

	format := p.config.OutputFormat
	switch format {
	case "wav":
		req.ResponseFormat = openai.SpeechResponseFormatWav
	default:
		format = "mp3"
		req.ResponseFormat = openai.SpeechResponseFormatMp3
	}

	out, err := os.CreateTemp(p.config.TempDir, "learnlanguage-*."+format)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio file: %w", err)
	}

	written, err := p.fetchAudio(ctx, req, out)
	closeErr := out.Close()
	if err == nil && closeErr != nil {
		err = closeErr
	}
	if err == nil && written == 0 {
		err = &SynthesisError{
			Reason: ReasonEmptyAudio,
			Err:    fmt.Errorf("no audio data received from OpenAI"),
		}
	}
	if err != nil {
		os.Remove(out.Name())
		return nil, err
	}

	return NewResource(out.Name(), text, lang), nil
}

func (p *OpenAIProvider) fetchAudio(ctx context.Context, req openai.CreateSpeechRequest, out io.Writer) (int64, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		response, err := p.client.CreateSpeech(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("OpenAI TTS API error: %w", err)
		}
		defer response.Close()

		written, err := io.Copy(out, response)
		if err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}
		return written, nil
	})
	if err != nil {
		return 0, &SynthesisError{Reason: ReasonUnreachable, Err: err}
	}
	return result.(int64), nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is configured
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}

// preprocessText strips punctuation that should not be spoken aloud
func preprocessText(text string) string {
	cleaned := strings.TrimSpace(text)

	punctuation := []string{"!", "?", ".", ",", ";", ":", "\"", "(", ")", "[", "]", "{", "}", "—", "–"}
	for _, punct := range punctuation {
		cleaned = strings.ReplaceAll(cleaned, punct, "")
	}

	return strings.TrimSpace(cleaned)
}

// languageInstruction tells the TTS model which phonetics to use
func languageInstruction(lang vocab.Language) string {
	switch lang {
	case vocab.LanguageSpanish:
		return "You are speaking Spanish (español). Pronounce the text with authentic Spanish phonetics. Speak slowly and clearly for language learners."
	case vocab.LanguageRussian:
		return "You are speaking Russian (русский язык). Pronounce the text with authentic Russian phonetics. Speak slowly and clearly for language learners."
	default:
		return "Speak slowly and clearly for language learners."
	}
}
