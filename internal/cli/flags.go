package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	OutputDir    string
	Items        int
	Difficulty   string
	Language     string
	Provider     string
	BatchFile    string
	SkipAudio    bool
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string
	ListModels   bool
	GUIMode      bool

	// Speech flags
	SpeechProvider string
	AudioFormat    string
	OpenAITTSModel string
	OpenAIVoice    string
	OpenAISpeed    float64

	// Generation flags
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Items:          10,
		Difficulty:     "beginner",
		Language:       "spanish",
		Provider:       "openai",
		SpeechProvider: "openai",
		AudioFormat:    "mp3",
		DeckName:       "LearnLanguage Vocabulary",
		OpenAITTSModel: "gpt-4o-mini-tts",
		OpenAISpeed:    0.95,
		OpenAIModel:    "gpt-4o-mini",
		GeminiModel:    "gemini-2.0-flash",
	}
}
