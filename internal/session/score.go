package session

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/stvsever/LearnLanguage/internal/vocab"
)

// TestResult records the outcome for a single quiz item.
type TestResult struct {
	Item    vocab.WordItem
	Answer  string
	Correct bool
}

// TestReport summarizes a finished quiz round.
type TestReport struct {
	Results []TestResult
	Score   int
	Total   int
}

// Fold normalizes an answer for comparison: lowercased, trimmed, with
// diacritic marks removed so "Adios" matches "adiós".
func Fold(s string) string {
	// Transformers carry state, so build a fresh chain per call.
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(chain, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// grade scores answers against the word list, case and diacritic
// insensitively. Missing answers count as wrong.
func grade(list vocab.WordList, answers map[int]string) TestReport {
	report := TestReport{Total: len(list)}
	for i, item := range list {
		answer := answers[i]
		correct := Fold(answer) == Fold(item.Target)
		if correct {
			report.Score++
		}
		report.Results = append(report.Results, TestResult{
			Item:    item,
			Answer:  answer,
			Correct: correct,
		})
	}
	return report
}
