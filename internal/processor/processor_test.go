package processor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stvsever/LearnLanguage/internal/cli"
	"github.com/stvsever/LearnLanguage/internal/vocab"
)

func TestNewProcessor(t *testing.T) {
	flags := cli.NewFlags()
	p := NewProcessor(flags, nil)

	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}

	if p.flags != flags {
		t.Error("Processor flags not set correctly")
	}

	if p.log == nil {
		t.Error("Logger not initialized")
	}
}

func TestBuildParams(t *testing.T) {
	flags := cli.NewFlags()
	flags.Items = 12
	flags.Difficulty = "advanced"
	flags.Language = "russian"
	p := NewProcessor(flags, nil)

	params, err := p.buildParams("ordering food", 0)
	if err != nil {
		t.Fatalf("buildParams() error = %v", err)
	}

	if params.Concept != "ordering food" {
		t.Errorf("Expected concept 'ordering food', got %q", params.Concept)
	}
	if params.ItemCount != 12 {
		t.Errorf("Expected 12 items from flags, got %d", params.ItemCount)
	}
	if params.Difficulty != vocab.DifficultyAdvanced {
		t.Errorf("Expected advanced difficulty, got %q", params.Difficulty)
	}
	if params.Language != vocab.LanguageRussian {
		t.Errorf("Expected russian language, got %q", params.Language)
	}

	// Per-concept override wins over the flag
	params, err = p.buildParams("numbers", 5)
	if err != nil {
		t.Fatalf("buildParams() error = %v", err)
	}
	if params.ItemCount != 5 {
		t.Errorf("Expected 5 items from override, got %d", params.ItemCount)
	}
}

func TestBuildParamsInvalid(t *testing.T) {
	flags := cli.NewFlags()
	flags.Difficulty = "impossible"
	p := NewProcessor(flags, nil)

	if _, err := p.buildParams("greetings", 0); err == nil {
		t.Error("Expected error for invalid difficulty")
	}

	flags = cli.NewFlags()
	flags.Language = "klingon"
	p = NewProcessor(flags, nil)

	if _, err := p.buildParams("greetings", 0); err == nil {
		t.Error("Expected error for invalid language")
	}
}

func TestProcessConceptInvalidParams(t *testing.T) {
	flags := cli.NewFlags()
	flags.OutputDir = t.TempDir()
	flags.Difficulty = "impossible"
	p := NewProcessor(flags, nil)

	err := p.ProcessConcept(context.Background(), "greetings", 0)
	if err == nil {
		t.Error("Expected error for invalid difficulty")
	}
}

func TestGenerationConfig(t *testing.T) {
	os.Setenv("OPENAI_API_KEY", "test-key")
	defer os.Unsetenv("OPENAI_API_KEY")

	flags := cli.NewFlags()
	p := NewProcessor(flags, nil)

	config := p.generationConfig()
	if config.Provider != "openai" {
		t.Errorf("Expected provider 'openai', got %q", config.Provider)
	}
	if config.OpenAIKey != "test-key" {
		t.Errorf("Expected key from environment, got %q", config.OpenAIKey)
	}
	if config.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("Expected model 'gpt-4o-mini', got %q", config.OpenAIModel)
	}
}

func TestSaveWordList(t *testing.T) {
	dir := t.TempDir()

	list := vocab.WordList{
		{Source: "hello", Target: "hola"},
		{Source: "goodbye", Target: "adiós", Phonetic: "ah-DYOS"},
	}

	if err := saveWordList(dir, list); err != nil {
		t.Fatalf("saveWordList() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "list.txt"))
	if err != nil {
		t.Fatalf("Failed to read list file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "hello — hola") {
		t.Errorf("Expected plain entry in list file, got:\n%s", content)
	}
	if !strings.Contains(content, "goodbye — adiós [ah-DYOS]") {
		t.Errorf("Expected phonetic hint in list file, got:\n%s", content)
	}
}

func TestCreateSessionDir(t *testing.T) {
	flags := cli.NewFlags()
	flags.OutputDir = t.TempDir()
	p := NewProcessor(flags, nil)

	dir, err := p.createSessionDir("greetings")
	if err != nil {
		t.Fatalf("createSessionDir() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("Expected session directory to exist: %v", err)
	}
}

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp3")
	dst := filepath.Join(dir, "dst.mp3")

	if err := os.WriteFile(src, []byte("audio"), 0644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}

	if err := moveFile(src, dst); err != nil {
		t.Fatalf("moveFile() error = %v", err)
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("Expected source file to be gone")
	}

	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "audio" {
		t.Errorf("Destination content mismatch: %v", err)
	}
}
