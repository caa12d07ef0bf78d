// Package testutil provides shared mocks and filesystem helpers for
// package tests. Nothing here touches the network.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stvsever/LearnLanguage/internal/speech"
	"github.com/stvsever/LearnLanguage/internal/vocab"
)

// MockGenerator implements vocab.Generator with canned word lists
type MockGenerator struct {
	List  vocab.WordList
	Err   error
	Calls []vocab.Params
}

// Generate returns the configured list or error
func (m *MockGenerator) Generate(ctx context.Context, params vocab.Params) (vocab.WordList, error) {
	m.Calls = append(m.Calls, params)

	if m.Err != nil {
		return nil, m.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.List, nil
}

// Name identifies the mock
func (m *MockGenerator) Name() string { return "mock" }

// IsAvailable always succeeds
func (m *MockGenerator) IsAvailable() error { return nil }

// MockSpeechProvider implements speech.Provider by writing fake audio
// files into a temporary directory.
type MockSpeechProvider struct {
	TempDir string
	Err     error
	Calls   []string
}

// Synthesize writes a small fake audio artifact and returns it
func (m *MockSpeechProvider) Synthesize(ctx context.Context, text string, lang vocab.Language) (*speech.Resource, error) {
	m.Calls = append(m.Calls, text)

	if m.Err != nil {
		return nil, m.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.CreateTemp(m.TempDir, "mock-*.mp3")
	if err != nil {
		return nil, err
	}
	if _, err := file.Write([]byte{0xFF, 0xFB, 0x90, 0x00}); err != nil {
		file.Close()
		return nil, err
	}
	file.Close()

	return speech.NewResource(file.Name(), text, lang), nil
}

// Name identifies the mock
func (m *MockSpeechProvider) Name() string { return "mock" }

// IsAvailable always succeeds
func (m *MockSpeechProvider) IsAvailable() error { return nil }

// RecordingPlayer implements the session controller's AudioPlayer and
// records the paths it was asked to play.
type RecordingPlayer struct {
	mu     sync.Mutex
	Err    error
	Played []string
}

// Play records the path and returns the configured error
func (p *RecordingPlayer) Play(ctx context.Context, path string) error {
	p.mu.Lock()
	p.Played = append(p.Played, path)
	p.mu.Unlock()

	if p.Err != nil {
		return p.Err
	}
	return ctx.Err()
}

// PlayedPaths returns a copy of the recorded paths
func (p *RecordingPlayer) PlayedPaths() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.Played...)
}

// SampleWordList returns a small Spanish word list for tests
func SampleWordList() vocab.WordList {
	return vocab.WordList{
		{Source: "hello", Target: "hola", Phonetic: "OH-lah"},
		{Source: "goodbye", Target: "adiós", Phonetic: "ah-DYOS"},
		{Source: "thank you", Target: "gracias", Phonetic: "GRAH-syahs"},
	}
}

// CreateTestFile creates a file with content, making parent directories
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

var (
	_ vocab.Generator = (*MockGenerator)(nil)
	_ speech.Provider = (*MockSpeechProvider)(nil)
)
