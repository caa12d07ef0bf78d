package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Items", flags.Items, 10},
		{"Difficulty", flags.Difficulty, "beginner"},
		{"Language", flags.Language, "spanish"},
		{"Provider", flags.Provider, "openai"},
		{"SpeechProvider", flags.SpeechProvider, "openai"},
		{"AudioFormat", flags.AudioFormat, "mp3"},
		{"DeckName", flags.DeckName, "LearnLanguage Vocabulary"},
		{"OpenAITTSModel", flags.OpenAITTSModel, "gpt-4o-mini-tts"},
		{"OpenAISpeed", flags.OpenAISpeed, 0.95},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini"},
		{"GeminiModel", flags.GeminiModel, "gemini-2.0-flash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"SkipAudio", flags.SkipAudio},
		{"GenerateAnki", flags.GenerateAnki},
		{"AnkiCSV", flags.AnkiCSV},
		{"ListModels", flags.ListModels},
		{"GUIMode", flags.GUIMode},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// String defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"OutputDir", flags.OutputDir},
		{"BatchFile", flags.BatchFile},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}

func TestFlagsStructure(t *testing.T) {
	flags := &Flags{}
	flagsType := reflect.TypeOf(*flags)

	expectedFields := []string{
		"CfgFile", "OutputDir", "Items", "Difficulty", "Language",
		"Provider", "BatchFile", "SkipAudio", "GenerateAnki", "AnkiCSV",
		"DeckName", "ListModels", "GUIMode",
		"SpeechProvider", "AudioFormat", "OpenAITTSModel", "OpenAIVoice",
		"OpenAISpeed", "OpenAIModel", "GeminiModel",
	}

	for _, fieldName := range expectedFields {
		t.Run("has_field_"+fieldName, func(t *testing.T) {
			if _, ok := flagsType.FieldByName(fieldName); !ok {
				t.Errorf("Flags struct missing field: %s", fieldName)
			}
		})
	}
}
