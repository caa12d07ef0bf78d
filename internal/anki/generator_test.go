package anki

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stvsever/LearnLanguage/internal/vocab"
)

func TestDefaultGeneratorOptions(t *testing.T) {
	opts := DefaultGeneratorOptions()

	if opts.OutputPath != "anki_import.csv" {
		t.Errorf("Expected output path 'anki_import.csv', got '%s'", opts.OutputPath)
	}

	if !opts.IncludeHeaders {
		t.Error("Expected IncludeHeaders to be true")
	}
}

func TestNewGenerator(t *testing.T) {
	// Test with nil options
	gen := NewGenerator(nil)
	if gen == nil {
		t.Fatal("NewGenerator returned nil")
	}
	if gen.options == nil {
		t.Error("Generator options should not be nil")
	}

	// Test with custom options
	opts := &GeneratorOptions{
		OutputPath: "custom.csv",
	}
	gen = NewGenerator(opts)
	if gen.options.OutputPath != "custom.csv" {
		t.Errorf("Expected custom output path, got '%s'", gen.options.OutputPath)
	}
}

func TestAddCard(t *testing.T) {
	gen := NewGenerator(nil)

	card := Card{
		Source:    "apple",
		Target:    "manzana",
		Phonetic:  "man-SA-na",
		AudioFile: "audio.mp3",
	}

	gen.AddCard(card)

	if len(gen.cards) != 1 {
		t.Errorf("Expected 1 card, got %d", len(gen.cards))
	}

	if gen.cards[0].Target != "manzana" {
		t.Errorf("Expected target 'manzana', got '%s'", gen.cards[0].Target)
	}
}

func TestAddWordList(t *testing.T) {
	gen := NewGenerator(nil)

	gen.AddWordList(vocab.WordList{
		{Source: "hello", Target: "hola"},
		{Source: "goodbye", Target: "adiós", Phonetic: "ah-DYOS"},
	})

	if len(gen.cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(gen.cards))
	}

	if gen.cards[1].Phonetic != "ah-DYOS" {
		t.Errorf("Expected phonetic 'ah-DYOS', got '%s'", gen.cards[1].Phonetic)
	}
}

func TestGetCards(t *testing.T) {
	gen := NewGenerator(nil)

	gen.AddCard(Card{Target: "manzana"})
	gen.AddCard(Card{Target: "gato"})

	cards := gen.GetCards()
	if len(cards) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(cards))
	}

	// Test that we can modify the returned slice
	cards[0].AudioFile = "manzana.mp3"
	if gen.cards[0].AudioFile != "manzana.mp3" {
		t.Error("GetCards should return the actual slice, not a copy")
	}
}

func TestFormatAudioField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
		{
			name:     "simple audio file",
			input:    "/path/to/hola.mp3",
			expected: "[sound:hola.mp3]",
		},
		{
			name:     "non-ascii filename",
			input:    "/home/user/learnlanguage/привет.mp3",
			expected: "[sound:привет.mp3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatAudioField(tt.input)
			if result != tt.expected {
				t.Errorf("formatAudioField(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGenerateCSV(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "test.csv")

	gen := NewGenerator(&GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: true,
	})

	gen.AddCard(Card{
		Source:    "apple",
		Target:    "manzana",
		Phonetic:  "man-SA-na",
		AudioFile: "/path/to/manzana.mp3",
	})

	gen.AddCard(Card{
		Source: "cat",
		Target: "gato",
	})

	err := gen.GenerateCSV()
	if err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected headers plus 2 data rows, got %d records", len(records))
	}

	expectedHeaders := []string{"Source", "Target", "Phonetic", "Audio"}
	for i, header := range expectedHeaders {
		if records[0][i] != header {
			t.Errorf("Expected header '%s' at position %d, got '%s'", header, i, records[0][i])
		}
	}

	if records[1][0] != "apple" {
		t.Errorf("Expected source 'apple', got '%s'", records[1][0])
	}

	if records[1][1] != "manzana" {
		t.Errorf("Expected target 'manzana', got '%s'", records[1][1])
	}

	if records[1][3] != "[sound:manzana.mp3]" {
		t.Errorf("Expected audio field '[sound:manzana.mp3]', got '%s'", records[1][3])
	}

	if records[2][3] != "" {
		t.Errorf("Expected empty audio field, got '%s'", records[2][3])
	}
}

func TestGenerateCSVWithoutHeaders(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "test.csv")

	gen := NewGenerator(&GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: false,
	})

	gen.AddCard(Card{
		Source: "apple",
		Target: "manzana",
	})

	err := gen.GenerateCSV()
	if err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) != 1 {
		t.Errorf("Expected 1 record (no headers), got %d", len(records))
	}

	if records[0][0] != "apple" {
		t.Errorf("First field should be 'apple', got '%s'", records[0][0])
	}
}

func TestStats(t *testing.T) {
	gen := NewGenerator(nil)

	total, audio := gen.Stats()
	if total != 0 || audio != 0 {
		t.Errorf("Expected empty stats, got total=%d, audio=%d", total, audio)
	}

	gen.AddCard(Card{Target: "manzana", AudioFile: "manzana.mp3"})
	gen.AddCard(Card{Target: "gato", AudioFile: "gato.mp3"})
	gen.AddCard(Card{Target: "pan"})

	total, audio = gen.Stats()
	if total != 3 {
		t.Errorf("Expected 3 total cards, got %d", total)
	}

	if audio != 2 {
		t.Errorf("Expected 2 cards with audio, got %d", audio)
	}
}
