package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stvsever/LearnLanguage/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "learnlanguage [concept]",
		Short: "LLM-powered vocabulary tutor",
		Long: `learnlanguage generates bilingual vocabulary lists for a concept,
speaks them aloud with text-to-speech, and quizzes you on them.

Examples:
  learnlanguage                         # Launch interactive GUI (default)
  learnlanguage "ordering food"         # Generate a word list via CLI
  learnlanguage --batch concepts.txt    # Process multiple concepts from file`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "learnlanguage", "lists")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.learnlanguage.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", defaultOutputDir, "Output directory")
	cmd.Flags().IntVarP(&flags.Items, "items", "n", flags.Items, "Number of entries to generate")
	cmd.Flags().StringVarP(&flags.Difficulty, "difficulty", "d", flags.Difficulty, "Difficulty: beginner, intermediate, advanced, expert")
	cmd.Flags().StringVarP(&flags.Language, "language", "l", flags.Language, "Target language: spanish or russian")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Generation provider: openai or gemini")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process concepts from file (one per line)")
	cmd.Flags().BoolVar(&flags.SkipAudio, "skip-audio", false, "Skip audio synthesis")
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Export an Anki deck (APKG format by default, use --anki-csv for CSV)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Export CSV format instead of APKG when using --anki")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")

	// Speech flags
	cmd.Flags().StringVar(&flags.SpeechProvider, "speech-provider", flags.SpeechProvider, "Speech provider: openai or espeak")
	cmd.Flags().StringVarP(&flags.AudioFormat, "format", "f", flags.AudioFormat, "Audio format (wav or mp3)")
	cmd.Flags().StringVar(&flags.OpenAITTSModel, "openai-tts-model", flags.OpenAITTSModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", "alloy", "OpenAI voice: alloy, ash, coral, echo, nova, sage, shimmer")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0)")

	// Generation flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for word list generation")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for word list generation")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("generation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("generation.items", cmd.Flags().Lookup("items"))
	viper.BindPFlag("generation.difficulty", cmd.Flags().Lookup("difficulty"))
	viper.BindPFlag("generation.language", cmd.Flags().Lookup("language"))
	viper.BindPFlag("generation.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("generation.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("speech.provider", cmd.Flags().Lookup("speech-provider"))
	viper.BindPFlag("speech.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("speech.openai_model", cmd.Flags().Lookup("openai-tts-model"))
	viper.BindPFlag("speech.openai_voice", cmd.Flags().Lookup("openai-voice"))
	viper.BindPFlag("speech.openai_speed", cmd.Flags().Lookup("openai-speed"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// Load .env first so keys from it are visible as environment variables
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".learnlanguage")
	}

	viper.SetEnvPrefix("LEARNLANGUAGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("generation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("generation.gemini_key")
}
