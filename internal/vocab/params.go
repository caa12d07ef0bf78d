package vocab

import (
	"fmt"
	"strings"
)

// Difficulty is the requested difficulty level for generated vocabulary.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// Difficulties returns all supported difficulty levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{
		DifficultyBeginner,
		DifficultyIntermediate,
		DifficultyAdvanced,
		DifficultyExpert,
	}
}

// ParseDifficulty parses a difficulty name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty: %q", s)
}

func (d Difficulty) String() string {
	return string(d)
}

// DisplayName returns the difficulty name capitalized for prompts and UI.
func (d Difficulty) DisplayName() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Language is a supported target language.
type Language string

const (
	LanguageSpanish Language = "spanish"
	LanguageRussian Language = "russian"
)

// Languages returns all supported target languages.
func Languages() []Language {
	return []Language{LanguageSpanish, LanguageRussian}
}

// ParseLanguage parses a language name or ISO code, case-insensitively.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spanish", "es":
		return LanguageSpanish, nil
	case "russian", "ru":
		return LanguageRussian, nil
	}
	return "", fmt.Errorf("unsupported language: %q", s)
}

func (l Language) String() string {
	return string(l)
}

// DisplayName returns the language name capitalized for prompts and UI.
func (l Language) DisplayName() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

// Code returns the ISO 639-1 code for the language.
func (l Language) Code() string {
	switch l {
	case LanguageSpanish:
		return "es"
	case LanguageRussian:
		return "ru"
	}
	return ""
}

// Valid reports whether the language is one of the supported targets.
func (l Language) Valid() bool {
	switch l {
	case LanguageSpanish, LanguageRussian:
		return true
	}
	return false
}

// Params are the user-supplied parameters for one generation request.
type Params struct {
	Concept    string
	ItemCount  int
	Difficulty Difficulty
	Language   Language
}

// Validate checks that the parameters describe a well-formed request.
func (p Params) Validate() error {
	if strings.TrimSpace(p.Concept) == "" {
		return fmt.Errorf("concept cannot be empty")
	}
	if p.ItemCount < 1 {
		return fmt.Errorf("item count must be at least 1, got %d", p.ItemCount)
	}
	if _, err := ParseDifficulty(string(p.Difficulty)); err != nil {
		return err
	}
	if !p.Language.Valid() {
		return fmt.Errorf("unsupported language: %q", p.Language)
	}
	return nil
}
