package speech

import (
	"context"
	"fmt"
	"os"

	"github.com/stvsever/LearnLanguage/internal/vocab"
)

// ESpeakProvider implements Provider for the local espeak-ng engine. It
// needs no API key, which makes it a natural offline fallback.
type ESpeakProvider struct {
	espeak *ESpeak
	config *Config
}

// NewESpeakProvider creates a new espeak-ng provider
func NewESpeakProvider(config *Config) (Provider, error) {
	espeak, err := NewESpeak(nil)
	if err != nil {
		return nil, err
	}

	return &ESpeakProvider{
		espeak: espeak,
		config: config,
	}, nil
}

// Synthesize generates audio for the text using espeak-ng
func (p *ESpeakProvider) Synthesize(ctx context.Context, text string, lang vocab.Language) (*Resource, error) {
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
	if err := ctx.Err(); err != nil {
		return nil, &SynthesisError{Reason: ReasonUnreachable, Err: err}
	}

	format := p.config.OutputFormat
	if format != "wav" {
		format = "mp3"
	}

	out, err := os.CreateTemp(p.config.TempDir, "learnlanguage-*."+format)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio file: %w", err)
	}
	path := out.Name()
	out.Close()

	voice := lang.Code()
	if format == "wav" {
		err = p.espeak.GenerateAudio(input, voice, path)
	} else {
		err = p.espeak.GenerateMP3(input, voice, path)
	}
	if err != nil {
		os.Remove(path)
		return nil, &SynthesisError{Reason: ReasonUnreachable, Err: err}
	}

	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		os.Remove(path)
		return nil, &SynthesisError{
			Reason: ReasonEmptyAudio,
			Err:    fmt.Errorf("espeak-ng produced no audio data"),
		}
	}

	return NewResource(path, text, lang), nil
}

// Name returns the provider name
func (p *ESpeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (p *ESpeakProvider) IsAvailable() error {
	return checkESpeakInstalled()
}
