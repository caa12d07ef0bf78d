package anki

import (
	"archive/zip"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func TestNewAPKGGenerator(t *testing.T) {
	gen := NewAPKGGenerator("Test Deck")

	if gen == nil {
		t.Fatal("NewAPKGGenerator returned nil")
	}

	if gen.deckName != "Test Deck" {
		t.Errorf("Expected deck name 'Test Deck', got '%s'", gen.deckName)
	}

	if len(gen.cards) != 0 {
		t.Errorf("Expected empty cards slice, got %d cards", len(gen.cards))
	}

	if len(gen.mediaFiles) != 0 {
		t.Errorf("Expected empty media files, got %d files", len(gen.mediaFiles))
	}
}

func TestAPKGAddCard(t *testing.T) {
	gen := NewAPKGGenerator("Test Deck")

	tempDir := t.TempDir()
	audioFile := filepath.Join(tempDir, "manzana.mp3")
	os.WriteFile(audioFile, []byte("audio data"), 0644)

	card := Card{
		Source:    "apple",
		Target:    "manzana",
		Phonetic:  "man-SA-na",
		AudioFile: audioFile,
	}

	gen.AddCard(card)

	if len(gen.cards) != 1 {
		t.Errorf("Expected 1 card, got %d", len(gen.cards))
	}

	// Media files are populated during copyMediaFiles, not AddCard
	if gen.cards[0].Target != "manzana" {
		t.Errorf("Expected target 'manzana', got '%s'", gen.cards[0].Target)
	}
}

func TestGenerateAPKG(t *testing.T) {
	tempDir := t.TempDir()

	audioFile := filepath.Join(tempDir, "manzana.mp3")
	os.WriteFile(audioFile, []byte("test audio data"), 0644)

	gen := NewAPKGGenerator("Spanish Vocabulary")

	gen.AddCard(Card{
		Source:    "apple",
		Target:    "manzana",
		AudioFile: audioFile,
	})

	outputPath := filepath.Join(tempDir, "test.apkg")
	err := gen.GenerateAPKG(outputPath)
	if err != nil {
		t.Fatalf("GenerateAPKG() error = %v", err)
	}

	// Verify it's a valid zip file with the expected entries
	reader, err := zip.OpenReader(outputPath)
	if err != nil {
		t.Fatalf("Failed to open APKG as zip: %v", err)
	}
	defer reader.Close()

	requiredFiles := map[string]bool{
		"collection.anki2": false,
		"media":            false,
		"0":                false, // audio file
	}

	for _, file := range reader.File {
		if _, ok := requiredFiles[file.Name]; ok {
			requiredFiles[file.Name] = true
		}
	}

	for name, found := range requiredFiles {
		if !found {
			t.Errorf("Required file '%s' not found in APKG", name)
		}
	}
}

func TestCreateDatabase(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.anki2")

	gen := NewAPKGGenerator("Test Deck")

	gen.AddCard(Card{
		Source: "cat",
		Target: "gato",
	})

	err := gen.createDatabase(dbPath)
	if err != nil {
		t.Fatalf("createDatabase() error = %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("Database file was not created")
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	coreTables := []string{"col", "notes", "cards"}
	for _, table := range coreTables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Expected table '%s' to exist: %v", table, err)
		}
	}

	// One note, two cards (forward + reverse)
	var noteCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&noteCount); err == nil && noteCount != 1 {
		t.Errorf("Expected 1 note, got %d", noteCount)
	}

	var cardCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM cards").Scan(&cardCount); err == nil && cardCount != 2 {
		t.Errorf("Expected 2 cards, got %d", cardCount)
	}
}
