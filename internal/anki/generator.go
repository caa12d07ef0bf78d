// Package anki exports generated word lists as Anki flashcard decks,
// either as a plain CSV for manual import or as a complete .apkg file.
package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stvsever/LearnLanguage/internal/vocab"
)

// Card represents a single flashcard
type Card struct {
	Source    string // Term in the user's language
	Target    string // Term in the language being learned
	Phonetic  string // Optional pronunciation hint
	AudioFile string // Path to the synthesized audio file
}

// CardFromWord builds a card from a word list item
func CardFromWord(item vocab.WordItem) Card {
	return Card{
		Source:   item.Source,
		Target:   item.Target,
		Phonetic: item.Phonetic,
	}
}

// GeneratorOptions configures the export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
	}
}

// Generator collects cards and writes Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new export generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// AddWordList adds one card per word list item
func (g *Generator) AddWordList(list vocab.WordList) {
	for _, item := range list {
		g.AddCard(CardFromWord(item))
	}
}

// GetCards returns a slice of all cards for modification
func (g *Generator) GetCards() []Card {
	return g.cards
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if g.options.IncludeHeaders {
		headers := []string{"Source", "Target", "Phonetic", "Audio"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{
			card.Source,
			card.Target,
			card.Phonetic,
			formatAudioField(card.AudioFile),
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	return nil
}

// GenerateAPKG creates a proper .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	apkgGen := NewAPKGGenerator(deckName)

	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}

	return apkgGen.GenerateAPKG(outputPath)
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, withAudio int) {
	totalCards = len(g.cards)

	for _, card := range g.cards {
		if card.AudioFile != "" {
			withAudio++
		}
	}

	return
}

// formatAudioField formats the audio file reference for Anki
func formatAudioField(audioFile string) string {
	if audioFile == "" {
		return ""
	}

	// Anki audio format: [sound:filename.mp3]
	return fmt.Sprintf("[sound:%s]", filepath.Base(audioFile))
}
