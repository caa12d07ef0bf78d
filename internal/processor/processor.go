package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/stvsever/LearnLanguage/internal"
	"github.com/stvsever/LearnLanguage/internal/anki"
	"github.com/stvsever/LearnLanguage/internal/batch"
	"github.com/stvsever/LearnLanguage/internal/cli"
	"github.com/stvsever/LearnLanguage/internal/gui"
	"github.com/stvsever/LearnLanguage/internal/player"
	"github.com/stvsever/LearnLanguage/internal/session"
	"github.com/stvsever/LearnLanguage/internal/speech"
	"github.com/stvsever/LearnLanguage/internal/vocab"
)

// Processor handles the main concept processing logic
type Processor struct {
	flags *cli.Flags
	log   *zap.Logger
}

// NewProcessor creates a new concept processor
func NewProcessor(flags *cli.Flags, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{
		flags: flags,
		log:   log,
	}
}

// ProcessConcept generates a word list for one concept, prints it, and
// optionally synthesizes audio and exports an Anki deck.
func (p *Processor) ProcessConcept(ctx context.Context, concept string, itemCount int) error {
	params, err := p.buildParams(concept, itemCount)
	if err != nil {
		return err
	}

	gen, err := vocab.NewGenerator(ctx, p.generationConfig())
	if err != nil {
		return err
	}

	fmt.Printf("\nGenerating %d entries for %q (%s, %s)...\n",
		params.ItemCount, params.Concept,
		params.Language.DisplayName(), params.Difficulty.DisplayName())

	list, err := gen.Generate(ctx, params)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	for i, item := range list {
		line := fmt.Sprintf("%2d. %s — %s", i+1, item.Source, item.Target)
		if item.Phonetic != "" {
			line += fmt.Sprintf(" [%s]", item.Phonetic)
		}
		fmt.Println(line)
	}

	sessionDir, err := p.createSessionDir(concept)
	if err != nil {
		return err
	}

	if err := saveWordList(sessionDir, list); err != nil {
		return err
	}

	audioFiles := map[int]string{}
	if !p.flags.SkipAudio {
		audioFiles, err = p.synthesizeList(ctx, list, params.Language, sessionDir)
		if err != nil {
			return err
		}
	}

	if p.flags.GenerateAnki {
		outputPath, err := p.generateAnkiFile(list, audioFiles, sessionDir)
		if err != nil {
			return err
		}
		fmt.Printf("\nAnki deck written to %s\n", outputPath)
	}

	fmt.Printf("\nSaved to %s\n", sessionDir)
	return nil
}

// ProcessBatch processes multiple concepts from a concept file
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadConceptFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	processedCount := 0
	errorCount := 0

	for i, entry := range entries {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(entries), entry.Concept)

		if err := p.ProcessConcept(ctx, entry.Concept, entry.ItemCount); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", entry.Concept, err)
			errorCount++
			continue
		}
		processedCount++
	}

	fmt.Printf("\n=== Batch Summary ===\n")
	fmt.Printf("Total concepts: %d\n", len(entries))
	fmt.Printf("Processed: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("=====================\n")

	return nil
}

// RunGUIMode launches the GUI application
func (p *Processor) RunGUIMode(ctx context.Context) error {
	gen, err := vocab.NewGenerator(ctx, p.generationConfig())
	if err != nil {
		return err
	}

	tts, err := p.newSpeechProvider()
	if err != nil {
		return err
	}

	controller := session.NewController(gen, tts, player.New(p.log), p.log)

	app := gui.New(&gui.Config{
		Controller: controller,
		Items:      p.flags.Items,
		Difficulty: p.flags.Difficulty,
		Language:   p.flags.Language,
		Log:        p.log,
	})
	app.Run()

	return nil
}

// buildParams turns flag values into validated generation parameters
func (p *Processor) buildParams(concept string, itemCount int) (vocab.Params, error) {
	difficulty, err := vocab.ParseDifficulty(p.flags.Difficulty)
	if err != nil {
		return vocab.Params{}, err
	}

	language, err := vocab.ParseLanguage(p.flags.Language)
	if err != nil {
		return vocab.Params{}, err
	}

	if itemCount <= 0 {
		itemCount = p.flags.Items
	}

	params := vocab.Params{
		Concept:    concept,
		ItemCount:  itemCount,
		Difficulty: difficulty,
		Language:   language,
	}
	if err := params.Validate(); err != nil {
		return vocab.Params{}, err
	}
	return params, nil
}

// generationConfig builds the word list generator configuration from
// flags and config file values.
func (p *Processor) generationConfig() *vocab.Config {
	config := &vocab.Config{
		Provider:    p.flags.Provider,
		OpenAIKey:   cli.GetOpenAIKey(),
		OpenAIModel: p.flags.OpenAIModel,
		GeminiKey:   cli.GetGeminiKey(),
		GeminiModel: p.flags.GeminiModel,
	}

	// Config file values apply when flags keep their defaults
	if p.flags.Provider == "openai" && viper.IsSet("generation.provider") {
		config.Provider = viper.GetString("generation.provider")
	}
	if p.flags.OpenAIModel == "gpt-4o-mini" && viper.IsSet("generation.openai_model") {
		config.OpenAIModel = viper.GetString("generation.openai_model")
	}
	if p.flags.GeminiModel == "gemini-2.0-flash" && viper.IsSet("generation.gemini_model") {
		config.GeminiModel = viper.GetString("generation.gemini_model")
	}

	return config
}

// newSpeechProvider builds the configured speech provider, wrapping it
// with an espeak-ng fallback when one is installed.
func (p *Processor) newSpeechProvider() (speech.Provider, error) {
	config := &speech.Config{
		Provider:     p.flags.SpeechProvider,
		OutputFormat: p.flags.AudioFormat,
		OpenAIKey:    cli.GetOpenAIKey(),
		OpenAIModel:  p.flags.OpenAITTSModel,
		OpenAIVoice:  p.flags.OpenAIVoice,
		OpenAISpeed:  p.flags.OpenAISpeed,
	}

	if p.flags.OpenAITTSModel == "gpt-4o-mini-tts" && viper.IsSet("speech.openai_model") {
		config.OpenAIModel = viper.GetString("speech.openai_model")
	}
	if p.flags.OpenAISpeed == 0.95 && viper.IsSet("speech.openai_speed") {
		config.OpenAISpeed = viper.GetFloat64("speech.openai_speed")
	}

	primary, err := speech.NewProvider(config)
	if err != nil {
		return nil, err
	}

	if config.Provider == "openai" {
		fallbackConfig := *config
		fallbackConfig.Provider = "espeak"
		if fallback, err := speech.NewESpeakProvider(&fallbackConfig); err == nil {
			return speech.NewProviderWithFallback(primary, fallback, p.log), nil
		}
	}

	return primary, nil
}

// synthesizeList generates one audio file per entry into the session
// directory and returns the paths by list index.
func (p *Processor) synthesizeList(ctx context.Context, list vocab.WordList, lang vocab.Language, sessionDir string) (map[int]string, error) {
	tts, err := p.newSpeechProvider()
	if err != nil {
		return nil, err
	}

	fmt.Printf("\nSynthesizing audio with %s...\n", tts.Name())

	audioFiles := make(map[int]string, len(list))
	for i, item := range list {
		res, err := tts.Synthesize(ctx, item.Target, lang)
		if err != nil {
			return nil, fmt.Errorf("audio synthesis for %q failed: %w", item.Target, err)
		}

		name := fmt.Sprintf("%02d_%s%s", i+1, internal.SanitizeFilename(item.Target), filepath.Ext(res.Path))
		target := filepath.Join(sessionDir, name)
		err = moveFile(res.Path, target)
		res.Release()
		if err != nil {
			return nil, fmt.Errorf("failed to store audio for %q: %w", item.Target, err)
		}

		audioFiles[i] = target
		fmt.Printf("  %s\n", name)
	}

	return audioFiles, nil
}

// generateAnkiFile exports the list as an Anki deck and returns the path
func (p *Processor) generateAnkiFile(list vocab.WordList, audioFiles map[int]string, sessionDir string) (string, error) {
	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     filepath.Join(sessionDir, "anki_import.csv"),
		IncludeHeaders: true,
	})
	gen.AddWordList(list)

	cards := gen.GetCards()
	for i := range cards {
		if path, ok := audioFiles[i]; ok {
			cards[i].AudioFile = path
		}
	}

	var outputPath string
	if p.flags.AnkiCSV {
		outputPath = filepath.Join(sessionDir, "anki_import.csv")
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		outputPath = filepath.Join(sessionDir, fmt.Sprintf("%s.apkg", internal.SanitizeFilename(p.flags.DeckName)))
		if err := gen.GenerateAPKG(outputPath, p.flags.DeckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	total, withAudio := gen.Stats()
	fmt.Printf("  Generated %d cards (%d with audio)\n", total, withAudio)

	return outputPath, nil
}

// createSessionDir creates a fresh directory for this run's artifacts
func (p *Processor) createSessionDir(concept string) (string, error) {
	sessionDir := filepath.Join(p.flags.OutputDir, internal.GenerateSessionID(concept))
	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return sessionDir, nil
}

// saveWordList writes the list in its line format to the session dir
func saveWordList(sessionDir string, list vocab.WordList) error {
	content := ""
	for _, item := range list {
		content += item.Source + " — " + item.Target
		if item.Phonetic != "" {
			content += " [" + item.Phonetic + "]"
		}
		content += "\n"
	}

	return os.WriteFile(filepath.Join(sessionDir, "list.txt"), []byte(content), 0644)
}

// moveFile moves a file, copying when rename crosses filesystems
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return err
	}
	return os.Remove(src)
}
